package usecases

import (
	"context"

	"propdesk/internal/application/ticket/dto"
	"propdesk/internal/domain/ticket"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type GetTicketByReferenceQuery struct {
	TenantID  uint
	Reference string
}

// GetTicketByReferenceUseCase serves the public status page. Reporters only
// hold the reference code, never the numeric id, and never see triage
// internals.
type GetTicketByReferenceUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketByReferenceUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketByReferenceUseCase {
	return &GetTicketByReferenceUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketByReferenceUseCase) Execute(ctx context.Context, query GetTicketByReferenceQuery) (*dto.TicketDTO, error) {
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if len(query.Reference) == 0 {
		return nil, errors.NewValidationError("ticket reference is required")
	}

	t, err := uc.ticketRepo.GetByReference(ctx, query.TenantID, query.Reference)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	messages, err := uc.ticketRepo.GetMessages(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket messages", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return dto.ToTicketDTO(t, messages, nil), nil
}
