package property

import "context"

// Location is the resolved zip/city of a property, used by contractor matching.
type Location struct {
	ZipCode string
	City    string
}

type Repository interface {
	Save(ctx context.Context, p *Property) error
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, tenantID, propertyID uint) error
	GetByID(ctx context.Context, tenantID, propertyID uint) (*Property, error)
	List(ctx context.Context, tenantID uint, page, pageSize int) ([]*Property, int64, error)
}
