package usecases

import (
	"context"

	"propdesk/internal/domain/property"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type CreatePropertyCommand struct {
	TenantID uint
	Name     string
	Street   string
	ZipCode  string
	City     string
	Units    []string
}

type CreatePropertyUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewCreatePropertyUseCase(propertyRepo property.Repository, logger logger.Interface) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{propertyRepo: propertyRepo, logger: logger}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, cmd CreatePropertyCommand) (*PropertyDTO, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	p, err := property.NewProperty(cmd.TenantID, cmd.Name, cmd.Street, cmd.ZipCode, cmd.City)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	for _, label := range cmd.Units {
		if err := p.AddUnit(label); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.propertyRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save property", "error", err)
		return nil, err
	}

	uc.logger.Infow("property created", "property_id", p.ID(), "tenant_id", cmd.TenantID)

	return toPropertyDTO(p), nil
}
