package triage

import "context"

type Repository interface {
	Save(ctx context.Context, result *TriageResult) error

	// GetLatestByTicketID returns the most recent result for the ticket, or a
	// not-found error when the ticket has never completed triage.
	GetLatestByTicketID(ctx context.Context, ticketID uint) (*TriageResult, error)

	ListByTicketID(ctx context.Context, ticketID uint) ([]*TriageResult, error)
}
