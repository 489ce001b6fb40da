package usecases

import "context"

type TriageTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) error
}

// TransactionManager runs a function inside a database transaction, carrying
// the transaction through the context. Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
