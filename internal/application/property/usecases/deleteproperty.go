package usecases

import (
	"context"

	"propdesk/internal/domain/property"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type DeletePropertyCommand struct {
	TenantID   uint
	PropertyID uint
}

type DeletePropertyUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewDeletePropertyUseCase(propertyRepo property.Repository, logger logger.Interface) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{propertyRepo: propertyRepo, logger: logger}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, cmd DeletePropertyCommand) error {
	if cmd.TenantID == 0 {
		return errors.NewValidationError("tenant ID is required")
	}
	if cmd.PropertyID == 0 {
		return errors.NewValidationError("property ID is required")
	}

	p, err := uc.propertyRepo.GetByID(ctx, cmd.TenantID, cmd.PropertyID)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.NewNotFoundError("property not found")
	}

	if err := uc.propertyRepo.Delete(ctx, cmd.TenantID, cmd.PropertyID); err != nil {
		uc.logger.Errorw("failed to delete property", "error", err, "property_id", cmd.PropertyID)
		return err
	}

	uc.logger.Infow("property deleted", "property_id", cmd.PropertyID)
	return nil
}
