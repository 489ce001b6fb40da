package usecases

import (
	"context"

	"propdesk/internal/domain/contractor"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type CreateContractorCommand struct {
	TenantID        uint
	Name            string
	Email           string
	Phone           string
	TradeTypes      []string
	ServiceZipCodes []string
	ServiceCities   []string
	PropertyIDs     []uint
}

type CreateContractorUseCase struct {
	contractorRepo contractor.Repository
	logger         logger.Interface
}

func NewCreateContractorUseCase(contractorRepo contractor.Repository, logger logger.Interface) *CreateContractorUseCase {
	return &CreateContractorUseCase{contractorRepo: contractorRepo, logger: logger}
}

func (uc *CreateContractorUseCase) Execute(ctx context.Context, cmd CreateContractorCommand) (*ContractorDTO, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	trades, err := parseTradeTypes(cmd.TradeTypes)
	if err != nil {
		return nil, err
	}

	c, err := contractor.NewContractor(cmd.TenantID, cmd.Name, cmd.Email, cmd.Phone, trades, cmd.ServiceZipCodes, cmd.ServiceCities)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	for _, propertyID := range cmd.PropertyIDs {
		if err := c.LinkProperty(propertyID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.contractorRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save contractor", "error", err)
		return nil, err
	}

	uc.logger.Infow("contractor created", "contractor_id", c.ID(), "tenant_id", cmd.TenantID)

	return toContractorDTO(c), nil
}

func parseTradeTypes(raw []string) ([]vo.Category, error) {
	if len(raw) == 0 {
		return nil, errors.NewValidationError("at least one trade type is required")
	}

	trades := make([]vo.Category, 0, len(raw))
	for _, s := range raw {
		category, err := vo.NewCategory(s)
		if err != nil {
			return nil, errors.NewValidationError("invalid trade type: " + s)
		}
		trades = append(trades, category)
	}
	return trades, nil
}
