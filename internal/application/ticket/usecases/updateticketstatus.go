package usecases

import (
	"context"

	"propdesk/internal/domain/ticket"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	TenantID  uint
	TicketID  uint
	NewStatus string
}

type UpdateTicketStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
}

type UpdateTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*UpdateTicketStatusResult, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("invalid status")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TenantID, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("ticket status updated",
		"ticket_id", t.ID(), "old_status", oldStatus.String(), "new_status", newStatus.String())

	return &UpdateTicketStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
	}, nil
}
