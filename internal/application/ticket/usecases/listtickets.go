package usecases

import (
	"context"

	"propdesk/internal/application/ticket/dto"
	"propdesk/internal/domain/ticket"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	TenantID uint
	Status   string
	Urgency  string
	Category string
	Type     string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	filter, err := buildListFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, query.TenantID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "tenant_id", query.TenantID)
		return nil, err
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func buildListFilter(query ListTicketsQuery) (ticket.ListFilter, error) {
	filter := ticket.ListFilter{Page: query.Page, PageSize: query.PageSize}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}
	if query.Urgency != "" {
		urgency, err := vo.NewUrgency(query.Urgency)
		if err != nil {
			return filter, errors.NewValidationError("invalid urgency filter")
		}
		filter.Urgency = &urgency
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return filter, errors.NewValidationError("invalid category filter")
		}
		filter.Category = &category
	}
	if query.Type != "" {
		ticketType, err := vo.NewTicketType(query.Type)
		if err != nil {
			return filter, errors.NewValidationError("invalid type filter")
		}
		filter.Type = &ticketType
	}

	return filter, nil
}
