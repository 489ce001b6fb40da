package usecases

import (
	"context"

	"propdesk/internal/application/ticket/dto"
	"propdesk/internal/domain/ticket"
	"propdesk/internal/domain/triage"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type GetTriageHistoryQuery struct {
	TenantID uint
	TicketID uint
}

// GetTriageHistoryUseCase lists all pipeline runs for a ticket, newest first.
// Staff use it to compare reprocessing outcomes.
type GetTriageHistoryUseCase struct {
	ticketRepo ticket.Repository
	triageRepo triage.Repository
	logger     logger.Interface
}

func NewGetTriageHistoryUseCase(
	ticketRepo ticket.Repository,
	triageRepo triage.Repository,
	logger logger.Interface,
) *GetTriageHistoryUseCase {
	return &GetTriageHistoryUseCase{
		ticketRepo: ticketRepo,
		triageRepo: triageRepo,
		logger:     logger,
	}
}

func (uc *GetTriageHistoryUseCase) Execute(ctx context.Context, query GetTriageHistoryQuery) ([]*dto.TriageResultDTO, error) {
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

	results, err := uc.triageRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list triage results", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	dtos := make([]*dto.TriageResultDTO, 0, len(results))
	for _, r := range results {
		dtos = append(dtos, dto.ToTriageResultDTO(r))
	}
	return dtos, nil
}
