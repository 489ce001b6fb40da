package contractor

import (
	"fmt"
	"time"

	vo "propdesk/internal/domain/ticket/valueobjects"
)

// Contractor is a service provider eligible for matching against tickets by
// trade and location. Trade tags, serviced zip codes, serviced cities and
// explicit property links together drive the ranking in the triage pipeline.
type Contractor struct {
	id              uint
	tenantID        uint
	name            string
	email           string
	phone           string
	tradeTypes      []vo.Category
	serviceZipCodes []string
	serviceCities   []string
	propertyIDs     []uint
	createdAt       time.Time
	updatedAt       time.Time
}

func NewContractor(
	tenantID uint,
	name, email, phone string,
	tradeTypes []vo.Category,
	serviceZipCodes []string,
	serviceCities []string,
) (*Contractor, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(tradeTypes) == 0 {
		return nil, fmt.Errorf("at least one trade type is required")
	}
	for _, t := range tradeTypes {
		if !t.IsValid() {
			return nil, fmt.Errorf("invalid trade type: %s", t)
		}
	}

	now := time.Now()
	return &Contractor{
		tenantID:        tenantID,
		name:            name,
		email:           email,
		phone:           phone,
		tradeTypes:      tradeTypes,
		serviceZipCodes: normalizeSet(serviceZipCodes),
		serviceCities:   normalizeSet(serviceCities),
		propertyIDs:     []uint{},
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructContractor(
	id uint,
	tenantID uint,
	name, email, phone string,
	tradeTypes []vo.Category,
	serviceZipCodes []string,
	serviceCities []string,
	propertyIDs []uint,
	createdAt, updatedAt time.Time,
) (*Contractor, error) {
	if id == 0 {
		return nil, fmt.Errorf("contractor ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	if propertyIDs == nil {
		propertyIDs = []uint{}
	}

	return &Contractor{
		id:              id,
		tenantID:        tenantID,
		name:            name,
		email:           email,
		phone:           phone,
		tradeTypes:      tradeTypes,
		serviceZipCodes: normalizeSet(serviceZipCodes),
		serviceCities:   normalizeSet(serviceCities),
		propertyIDs:     propertyIDs,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (c *Contractor) ID() uint             { return c.id }
func (c *Contractor) TenantID() uint       { return c.tenantID }
func (c *Contractor) Name() string         { return c.name }
func (c *Contractor) Email() string        { return c.email }
func (c *Contractor) Phone() string        { return c.phone }
func (c *Contractor) CreatedAt() time.Time { return c.createdAt }
func (c *Contractor) UpdatedAt() time.Time { return c.updatedAt }

func (c *Contractor) TradeTypes() []vo.Category {
	out := make([]vo.Category, len(c.tradeTypes))
	copy(out, c.tradeTypes)
	return out
}

func (c *Contractor) ServiceZipCodes() []string {
	out := make([]string, len(c.serviceZipCodes))
	copy(out, c.serviceZipCodes)
	return out
}

func (c *Contractor) ServiceCities() []string {
	out := make([]string, len(c.serviceCities))
	copy(out, c.serviceCities)
	return out
}

func (c *Contractor) PropertyIDs() []uint {
	out := make([]uint, len(c.propertyIDs))
	copy(out, c.propertyIDs)
	return out
}

func (c *Contractor) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contractor ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contractor ID cannot be zero")
	}
	c.id = id
	return nil
}

// HasTrade reports whether the contractor carries the given trade tag.
func (c *Contractor) HasTrade(category vo.Category) bool {
	for _, t := range c.tradeTypes {
		if t == category {
			return true
		}
	}
	return false
}

// ServicesZip reports whether the zip is in the serviced set. An empty zip
// never matches.
func (c *Contractor) ServicesZip(zip string) bool {
	if zip == "" {
		return false
	}
	for _, z := range c.serviceZipCodes {
		if z == zip {
			return true
		}
	}
	return false
}

// ServicesCity reports whether the city is in the serviced set. An empty city
// never matches.
func (c *Contractor) ServicesCity(city string) bool {
	if city == "" {
		return false
	}
	for _, sc := range c.serviceCities {
		if sc == city {
			return true
		}
	}
	return false
}

// IsLinkedToProperty reports whether the contractor is explicitly linked to
// the property. A nil property never matches.
func (c *Contractor) IsLinkedToProperty(propertyID *uint) bool {
	if propertyID == nil {
		return false
	}
	for _, id := range c.propertyIDs {
		if id == *propertyID {
			return true
		}
	}
	return false
}

func (c *Contractor) UpdateDetails(name, email, phone string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}

	c.name = name
	c.email = email
	c.phone = phone
	c.updatedAt = time.Now()
	return nil
}

func (c *Contractor) ReplaceTradeTypes(tradeTypes []vo.Category) error {
	if len(tradeTypes) == 0 {
		return fmt.Errorf("at least one trade type is required")
	}
	for _, t := range tradeTypes {
		if !t.IsValid() {
			return fmt.Errorf("invalid trade type: %s", t)
		}
	}

	c.tradeTypes = tradeTypes
	c.updatedAt = time.Now()
	return nil
}

func (c *Contractor) ReplaceServiceArea(zipCodes, cities []string) {
	c.serviceZipCodes = normalizeSet(zipCodes)
	c.serviceCities = normalizeSet(cities)
	c.updatedAt = time.Now()
}

func (c *Contractor) LinkProperty(propertyID uint) error {
	if propertyID == 0 {
		return fmt.Errorf("property ID cannot be zero")
	}
	for _, id := range c.propertyIDs {
		if id == propertyID {
			return nil
		}
	}

	c.propertyIDs = append(c.propertyIDs, propertyID)
	c.updatedAt = time.Now()
	return nil
}

func (c *Contractor) UnlinkProperty(propertyID uint) {
	kept := c.propertyIDs[:0]
	for _, id := range c.propertyIDs {
		if id != propertyID {
			kept = append(kept, id)
		}
	}
	c.propertyIDs = kept
	c.updatedAt = time.Now()
}

func normalizeSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
