package usecases

import (
	"context"

	"propdesk/internal/domain/property"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type GetPropertyQuery struct {
	TenantID   uint
	PropertyID uint
}

type GetPropertyUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewGetPropertyUseCase(propertyRepo property.Repository, logger logger.Interface) *GetPropertyUseCase {
	return &GetPropertyUseCase{propertyRepo: propertyRepo, logger: logger}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, query GetPropertyQuery) (*PropertyDTO, error) {
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if query.PropertyID == 0 {
		return nil, errors.NewValidationError("property ID is required")
	}

	p, err := uc.propertyRepo.GetByID(ctx, query.TenantID, query.PropertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("property not found")
	}

	return toPropertyDTO(p), nil
}
