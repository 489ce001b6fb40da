package usecases

import (
	"context"

	"propdesk/internal/domain/property"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type UpdatePropertyCommand struct {
	TenantID   uint
	PropertyID uint
	Name       string
	Street     string
	ZipCode    string
	City       string
}

type UpdatePropertyUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewUpdatePropertyUseCase(propertyRepo property.Repository, logger logger.Interface) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{propertyRepo: propertyRepo, logger: logger}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, cmd UpdatePropertyCommand) (*PropertyDTO, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if cmd.PropertyID == 0 {
		return nil, errors.NewValidationError("property ID is required")
	}

	p, err := uc.propertyRepo.GetByID(ctx, cmd.TenantID, cmd.PropertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("property not found")
	}

	if err := p.UpdateDetails(cmd.Name, cmd.Street, cmd.ZipCode, cmd.City); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.propertyRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update property", "error", err, "property_id", p.ID())
		return nil, err
	}

	uc.logger.Infow("property updated", "property_id", p.ID())

	return toPropertyDTO(p), nil
}
