package usecases

import "context"

type CreateContractorExecutor interface {
	Execute(ctx context.Context, cmd CreateContractorCommand) (*ContractorDTO, error)
}

type UpdateContractorExecutor interface {
	Execute(ctx context.Context, cmd UpdateContractorCommand) (*ContractorDTO, error)
}

type DeleteContractorExecutor interface {
	Execute(ctx context.Context, cmd DeleteContractorCommand) error
}

type GetContractorExecutor interface {
	Execute(ctx context.Context, query GetContractorQuery) (*ContractorDTO, error)
}

type ListContractorsExecutor interface {
	Execute(ctx context.Context, query ListContractorsQuery) (*ListContractorsResult, error)
}
