package property

import (
	"fmt"
	"time"
)

// Property is a managed building or site. It owns zero or more units and may be
// explicitly linked to contractors that service it.
type Property struct {
	id        uint
	tenantID  uint
	name      string
	street    string
	zipCode   string
	city      string
	units     []Unit
	createdAt time.Time
	updatedAt time.Time
}

// Unit is a rentable unit within a property, identified by its label ("2B", "Loft").
type Unit struct {
	ID    uint
	Label string
}

func NewProperty(tenantID uint, name, street, zipCode, city string) (*Property, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &Property{
		tenantID:  tenantID,
		name:      name,
		street:    street,
		zipCode:   zipCode,
		city:      city,
		units:     []Unit{},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProperty(
	id uint,
	tenantID uint,
	name, street, zipCode, city string,
	units []Unit,
	createdAt, updatedAt time.Time,
) (*Property, error) {
	if id == 0 {
		return nil, fmt.Errorf("property ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	if units == nil {
		units = []Unit{}
	}

	return &Property{
		id:        id,
		tenantID:  tenantID,
		name:      name,
		street:    street,
		zipCode:   zipCode,
		city:      city,
		units:     units,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Property) ID() uint             { return p.id }
func (p *Property) TenantID() uint       { return p.tenantID }
func (p *Property) Name() string         { return p.name }
func (p *Property) Street() string       { return p.street }
func (p *Property) ZipCode() string      { return p.zipCode }
func (p *Property) City() string         { return p.city }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }

func (p *Property) Units() []Unit {
	unitsCopy := make([]Unit, len(p.units))
	copy(unitsCopy, p.units)
	return unitsCopy
}

func (p *Property) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("property ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("property ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Property) UpdateDetails(name, street, zipCode, city string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}

	p.name = name
	p.street = street
	p.zipCode = zipCode
	p.city = city
	p.updatedAt = time.Now()
	return nil
}

func (p *Property) AddUnit(label string) error {
	if len(label) == 0 {
		return fmt.Errorf("unit label is required")
	}
	for _, u := range p.units {
		if u.Label == label {
			return fmt.Errorf("unit %q already exists", label)
		}
	}

	p.units = append(p.units, Unit{Label: label})
	p.updatedAt = time.Now()
	return nil
}
