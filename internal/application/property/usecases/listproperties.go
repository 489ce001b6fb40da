package usecases

import (
	"context"

	"propdesk/internal/domain/property"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type ListPropertiesQuery struct {
	TenantID uint
	Page     int
	PageSize int
}

type ListPropertiesResult struct {
	Properties []*PropertyDTO
	Total      int64
	Page       int
	PageSize   int
}

type ListPropertiesUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewListPropertiesUseCase(propertyRepo property.Repository, logger logger.Interface) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{propertyRepo: propertyRepo, logger: logger}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, query ListPropertiesQuery) (*ListPropertiesResult, error) {
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	properties, total, err := uc.propertyRepo.List(ctx, query.TenantID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list properties", "error", err, "tenant_id", query.TenantID)
		return nil, err
	}

	dtos := make([]*PropertyDTO, 0, len(properties))
	for _, p := range properties {
		dtos = append(dtos, toPropertyDTO(p))
	}

	return &ListPropertiesResult{
		Properties: dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
