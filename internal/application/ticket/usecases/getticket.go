package usecases

import (
	"context"

	"propdesk/internal/application/ticket/dto"
	"propdesk/internal/domain/ticket"
	"propdesk/internal/domain/triage"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TenantID uint
	TicketID uint
}

// GetTicketUseCase is the staff detail view: full ticket, message thread, and
// the latest triage result when one exists.
type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	triageRepo triage.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	triageRepo triage.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		triageRepo: triageRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TenantID, query.TicketID)
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

	latest, err := uc.triageRepo.GetLatestByTicketID(ctx, t.ID())
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to load latest triage result", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return dto.ToTicketDTO(t, messages, latest), nil
}
