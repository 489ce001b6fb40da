package ticket

import (
	"context"
	"time"

	vo "propdesk/internal/domain/ticket/valueobjects"
)

// ListFilter narrows staff ticket listings. Zero values mean "no constraint".
type ListFilter struct {
	Status   *vo.TicketStatus
	Urgency  *vo.Urgency
	Category *vo.Category
	Type     *vo.TicketType
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, tenantID, id uint) (*Ticket, error)

	// GetByIDUnscoped loads a ticket without tenant filtering. Only the
	// triage worker uses it; queue jobs carry the ticket id alone. HTTP
	// paths always go through the tenant-scoped variants.
	GetByIDUnscoped(ctx context.Context, id uint) (*Ticket, error)
	GetByReference(ctx context.Context, tenantID uint, reference string) (*Ticket, error)
	List(ctx context.Context, tenantID uint, filter ListFilter) ([]*Ticket, int64, error)
	SaveMessage(ctx context.Context, m *Message) error
	GetMessages(ctx context.Context, ticketID uint) ([]*Message, error)

	// ListStuckInProcessing returns tickets that have sat in ai_processing
	// since before the cutoff, across all tenants. Used by the sweep job.
	ListStuckInProcessing(ctx context.Context, cutoff time.Time, limit int) ([]*Ticket, error)
}
