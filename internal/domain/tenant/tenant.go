package tenant

import (
	"fmt"
	"regexp"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}$`)

// Tenant is a property-management company. It is the top-level data-isolation
// boundary: every ticket, contractor and property belongs to exactly one tenant.
type Tenant struct {
	id        uint
	name      string
	slug      string
	createdAt time.Time
	updatedAt time.Time
}

func NewTenant(name, slug string) (*Tenant, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid slug: %s", slug)
	}

	now := time.Now()
	return &Tenant{
		name:      name,
		slug:      slug,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTenant(id uint, name, slug string, createdAt, updatedAt time.Time) (*Tenant, error) {
	if id == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("slug is required")
	}

	return &Tenant{
		id:        id,
		name:      name,
		slug:      slug,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Tenant) ID() uint             { return t.id }
func (t *Tenant) Name() string         { return t.name }
func (t *Tenant) Slug() string         { return t.slug }
func (t *Tenant) CreatedAt() time.Time { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time { return t.updatedAt }

func (t *Tenant) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tenant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tenant ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Tenant) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	t.name = name
	t.updatedAt = time.Now()
	return nil
}
