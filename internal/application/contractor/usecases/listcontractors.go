package usecases

import (
	"context"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type ListContractorsQuery struct {
	TenantID uint
	Page     int
	PageSize int
}

type ListContractorsResult struct {
	Contractors []*ContractorDTO
	Total       int64
	Page        int
	PageSize    int
}

type ListContractorsUseCase struct {
	contractorRepo contractor.Repository
	logger         logger.Interface
}

func NewListContractorsUseCase(contractorRepo contractor.Repository, logger logger.Interface) *ListContractorsUseCase {
	return &ListContractorsUseCase{contractorRepo: contractorRepo, logger: logger}
}

func (uc *ListContractorsUseCase) Execute(ctx context.Context, query ListContractorsQuery) (*ListContractorsResult, error) {
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

	contractors, total, err := uc.contractorRepo.List(ctx, query.TenantID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list contractors", "error", err, "tenant_id", query.TenantID)
		return nil, err
	}

	dtos := make([]*ContractorDTO, 0, len(contractors))
	for _, c := range contractors {
		dtos = append(dtos, toContractorDTO(c))
	}

	return &ListContractorsResult{
		Contractors: dtos,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}
