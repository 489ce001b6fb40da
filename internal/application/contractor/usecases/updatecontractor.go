package usecases

import (
	"context"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type UpdateContractorCommand struct {
	TenantID        uint
	ContractorID    uint
	Name            string
	Email           string
	Phone           string
	TradeTypes      []string
	ServiceZipCodes []string
	ServiceCities   []string
	PropertyIDs     *[]uint
}

type UpdateContractorUseCase struct {
	contractorRepo contractor.Repository
	logger         logger.Interface
}

func NewUpdateContractorUseCase(contractorRepo contractor.Repository, logger logger.Interface) *UpdateContractorUseCase {
	return &UpdateContractorUseCase{contractorRepo: contractorRepo, logger: logger}
}

func (uc *UpdateContractorUseCase) Execute(ctx context.Context, cmd UpdateContractorCommand) (*ContractorDTO, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if cmd.ContractorID == 0 {
		return nil, errors.NewValidationError("contractor ID is required")
	}

	c, err := uc.contractorRepo.GetByID(ctx, cmd.TenantID, cmd.ContractorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("contractor not found")
	}

	if err := c.UpdateDetails(cmd.Name, cmd.Email, cmd.Phone); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.TradeTypes) > 0 {
		trades, err := parseTradeTypes(cmd.TradeTypes)
		if err != nil {
			return nil, err
		}
		if err := c.ReplaceTradeTypes(trades); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	c.ReplaceServiceArea(cmd.ServiceZipCodes, cmd.ServiceCities)

	if cmd.PropertyIDs != nil {
		for _, existing := range c.PropertyIDs() {
			c.UnlinkProperty(existing)
		}
		for _, propertyID := range *cmd.PropertyIDs {
			if err := c.LinkProperty(propertyID); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
	}

	if err := uc.contractorRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update contractor", "error", err, "contractor_id", c.ID())
		return nil, err
	}

	uc.logger.Infow("contractor updated", "contractor_id", c.ID())

	return toContractorDTO(c), nil
}
