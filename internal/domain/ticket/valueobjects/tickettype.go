package valueobjects

import "fmt"

// TicketType distinguishes what kind of report the tenant filed.
type TicketType string

const (
	TypeDamageReport       TicketType = "damage_report"
	TypeMaintenanceRequest TicketType = "maintenance_request"
	TypeOther              TicketType = "other"
)

var validTicketTypes = map[TicketType]bool{
	TypeDamageReport:       true,
	TypeMaintenanceRequest: true,
	TypeOther:              true,
}

func (tt TicketType) String() string {
	return string(tt)
}

func (tt TicketType) IsValid() bool {
	return validTicketTypes[tt]
}

func NewTicketType(s string) (TicketType, error) {
	tt := TicketType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return tt, nil
}
