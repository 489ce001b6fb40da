package usecases

import (
	"context"
	"time"

	"propdesk/internal/domain/ticket"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
	"propdesk/internal/shared/services/sanitize"
)

type AddMessageCommand struct {
	TenantID   uint
	Reference  string
	AuthorKind string
	AuthorName string
	Body       string
}

type AddMessageResult struct {
	MessageID uint
	CreatedAt time.Time
}

// AddMessageUseCase appends to a ticket's public conversation thread. The
// thread is append-only; closed tickets still accept messages so reporters
// can respond to the outcome.
type AddMessageUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddMessageUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddMessageUseCase {
	return &AddMessageUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if len(cmd.Reference) == 0 {
		return nil, errors.NewValidationError("ticket reference is required")
	}

	authorKind := ticket.AuthorKind(cmd.AuthorKind)
	if !authorKind.IsValid() {
		return nil, errors.NewValidationError("invalid author kind")
	}

	t, err := uc.ticketRepo.GetByReference(ctx, cmd.TenantID, cmd.Reference)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	message, err := ticket.NewMessage(
		t.ID(),
		authorKind,
		sanitize.Text(cmd.AuthorName),
		sanitize.Text(cmd.Body),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveMessage(ctx, message); err != nil {
		uc.logger.Errorw("failed to save ticket message", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("message added to ticket", "ticket_id", t.ID(), "author_kind", cmd.AuthorKind)

	return &AddMessageResult{MessageID: message.ID(), CreatedAt: message.CreatedAt()}, nil
}
