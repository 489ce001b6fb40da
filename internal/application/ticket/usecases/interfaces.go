package usecases

import (
	"context"

	"propdesk/internal/application/ticket/dto"
)

// TriageEnqueuer hands a ticket to the asynchronous triage pipeline.
// Implemented by the redis queue producer.
type TriageEnqueuer interface {
	Enqueue(ctx context.Context, ticketID uint) error
}

// EmailSender delivers plaintext email. Implemented by the SMTP sender.
type EmailSender interface {
	Send(to, subject, body string) error
}

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error)
}

type GetTicketByReferenceExecutor interface {
	Execute(ctx context.Context, query GetTicketByReferenceQuery) (*dto.TicketDTO, error)
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*UpdateTicketStatusResult, error)
}

type ReprocessTicketExecutor interface {
	Execute(ctx context.Context, cmd ReprocessTicketCommand) (*ReprocessTicketResult, error)
}

type SendContractorEmailExecutor interface {
	Execute(ctx context.Context, cmd SendContractorEmailCommand) (*SendContractorEmailResult, error)
}

type GetTriageHistoryExecutor interface {
	Execute(ctx context.Context, query GetTriageHistoryQuery) ([]*dto.TriageResultDTO, error)
}
