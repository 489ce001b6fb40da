package usecases

import (
	"context"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type DeleteContractorCommand struct {
	TenantID     uint
	ContractorID uint
}

// DeleteContractorUseCase removes a contractor. Existing triage results keep
// their ranked snapshot; dispatching to a deleted contractor fails at send
// time with a prompt to reprocess.
type DeleteContractorUseCase struct {
	contractorRepo contractor.Repository
	logger         logger.Interface
}

func NewDeleteContractorUseCase(contractorRepo contractor.Repository, logger logger.Interface) *DeleteContractorUseCase {
	return &DeleteContractorUseCase{contractorRepo: contractorRepo, logger: logger}
}

func (uc *DeleteContractorUseCase) Execute(ctx context.Context, cmd DeleteContractorCommand) error {
	if cmd.TenantID == 0 {
		return errors.NewValidationError("tenant ID is required")
	}
	if cmd.ContractorID == 0 {
		return errors.NewValidationError("contractor ID is required")
	}

	c, err := uc.contractorRepo.GetByID(ctx, cmd.TenantID, cmd.ContractorID)
	if err != nil {
		return err
	}
	if c == nil {
		return errors.NewNotFoundError("contractor not found")
	}

	if err := uc.contractorRepo.Delete(ctx, cmd.TenantID, cmd.ContractorID); err != nil {
		uc.logger.Errorw("failed to delete contractor", "error", err, "contractor_id", cmd.ContractorID)
		return err
	}

	uc.logger.Infow("contractor deleted", "contractor_id", cmd.ContractorID)
	return nil
}
