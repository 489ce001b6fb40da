package valueobjects

import "fmt"

// Category is the trade category a ticket is routed to. Values double as
// contractor trade tags.
type Category string

const (
	CategoryPlumbing           Category = "PLUMBING"
	CategoryElectrical         Category = "ELECTRICAL"
	CategoryLocksmith          Category = "LOCKSMITH"
	CategoryHeating            Category = "HEATING"
	CategoryGeneralMaintenance Category = "GENERAL_MAINTENANCE"
)

var validCategories = map[Category]bool{
	CategoryPlumbing:           true,
	CategoryElectrical:         true,
	CategoryLocksmith:          true,
	CategoryHeating:            true,
	CategoryGeneralMaintenance: true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
