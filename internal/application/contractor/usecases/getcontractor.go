package usecases

import (
	"context"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type GetContractorQuery struct {
	TenantID     uint
	ContractorID uint
}

type GetContractorUseCase struct {
	contractorRepo contractor.Repository
	logger         logger.Interface
}

func NewGetContractorUseCase(contractorRepo contractor.Repository, logger logger.Interface) *GetContractorUseCase {
	return &GetContractorUseCase{contractorRepo: contractorRepo, logger: logger}
}

func (uc *GetContractorUseCase) Execute(ctx context.Context, query GetContractorQuery) (*ContractorDTO, error) {
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if query.ContractorID == 0 {
		return nil, errors.NewValidationError("contractor ID is required")
	}

	c, err := uc.contractorRepo.GetByID(ctx, query.TenantID, query.ContractorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("contractor not found")
	}

	return toContractorDTO(c), nil
}
