package usecases

import (
	"context"

	"propdesk/internal/domain/ticket"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type ReprocessTicketCommand struct {
	TenantID uint
	TicketID uint
}

type ReprocessTicketResult struct {
	TicketID uint
	Status   string
}

// ReprocessTicketUseCase is the staff lever for re-running triage, typically
// after editing contractors or when an earlier run failed. The ticket goes
// back to ai_processing and a fresh job is queued; the old triage results
// remain as history.
type ReprocessTicketUseCase struct {
	ticketRepo ticket.Repository
	enqueuer   TriageEnqueuer
	logger     logger.Interface
}

func NewReprocessTicketUseCase(
	ticketRepo ticket.Repository,
	enqueuer TriageEnqueuer,
	logger logger.Interface,
) *ReprocessTicketUseCase {
	return &ReprocessTicketUseCase{
		ticketRepo: ticketRepo,
		enqueuer:   enqueuer,
		logger:     logger,
	}
}

func (uc *ReprocessTicketUseCase) Execute(ctx context.Context, cmd ReprocessTicketCommand) (*ReprocessTicketResult, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TenantID, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.RequestReprocess(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket for reprocessing", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	// Unlike submission, a queue failure here surfaces to the caller: the
	// staff member explicitly asked for a triage run and needs to know it
	// did not start.
	if err := uc.enqueuer.Enqueue(ctx, t.ID()); err != nil {
		uc.logger.Errorw("failed to enqueue triage job", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to enqueue triage job")
	}

	uc.logger.Infow("ticket queued for reprocessing", "ticket_id", t.ID())

	return &ReprocessTicketResult{TicketID: t.ID(), Status: t.Status().String()}, nil
}
