package usecases

import "context"

type CreatePropertyExecutor interface {
	Execute(ctx context.Context, cmd CreatePropertyCommand) (*PropertyDTO, error)
}

type UpdatePropertyExecutor interface {
	Execute(ctx context.Context, cmd UpdatePropertyCommand) (*PropertyDTO, error)
}

type DeletePropertyExecutor interface {
	Execute(ctx context.Context, cmd DeletePropertyCommand) error
}

type GetPropertyExecutor interface {
	Execute(ctx context.Context, query GetPropertyQuery) (*PropertyDTO, error)
}

type ListPropertiesExecutor interface {
	Execute(ctx context.Context, query ListPropertiesQuery) (*ListPropertiesResult, error)
}
