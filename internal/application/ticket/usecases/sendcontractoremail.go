package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/domain/shared/events"
	"propdesk/internal/domain/ticket"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/domain/triage"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
)

type SendContractorEmailCommand struct {
	TenantID uint
	TicketID uint
	// ContractorID selects a candidate from the latest triage result. Empty
	// means the top-ranked candidate.
	ContractorID string
}

type SendContractorEmailResult struct {
	TicketID       uint
	ContractorID   string
	ContractorName string
	Recipient      string
	Status         string
}

// SendContractorEmailUseCase delivers the triage draft to a ranked contractor
// and moves the ticket to awaiting_contractor. The fallback candidate has no
// email address, so dispatching to it is refused; staff contact external
// partners out of band.
type SendContractorEmailUseCase struct {
	ticketRepo     ticket.Repository
	triageRepo     triage.Repository
	contractorRepo contractor.Repository
	emailSender    EmailSender
	publisher      events.EventPublisher
	logger         logger.Interface
}

func NewSendContractorEmailUseCase(
	ticketRepo ticket.Repository,
	triageRepo triage.Repository,
	contractorRepo contractor.Repository,
	emailSender EmailSender,
	publisher events.EventPublisher,
	logger logger.Interface,
) *SendContractorEmailUseCase {
	return &SendContractorEmailUseCase{
		ticketRepo:     ticketRepo,
		triageRepo:     triageRepo,
		contractorRepo: contractorRepo,
		emailSender:    emailSender,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *SendContractorEmailUseCase) Execute(ctx context.Context, cmd SendContractorEmailCommand) (*SendContractorEmailResult, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TenantID, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	result, err := uc.triageRepo.GetLatestByTicketID(ctx, t.ID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewConflictError("ticket has no triage result yet")
		}
		return nil, err
	}

	candidate, err := selectCandidate(result, cmd.ContractorID)
	if err != nil {
		return nil, err
	}

	if candidate.Source == triage.SourceExternalFallback {
		return nil, errors.NewConflictError("the external fallback candidate cannot be emailed, contact a partner directly")
	}

	contractorID, err := strconv.ParseUint(candidate.ID, 10, 32)
	if err != nil {
		return nil, errors.NewInternalError("malformed contractor id in triage result")
	}

	c, err := uc.contractorRepo.GetByID(ctx, cmd.TenantID, uint(contractorID))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("contractor no longer exists, reprocess the ticket")
	}
	if c.Email() == "" {
		return nil, errors.NewConflictError("contractor has no email address on file")
	}

	subject, body := splitDraft(result.DraftText())
	if subject == "" {
		subject = fmt.Sprintf("Maintenance request %s - %s", t.Reference(), result.Category())
	}
	if err := uc.emailSender.Send(c.Email(), subject, body); err != nil {
		uc.logger.Errorw("failed to send contractor email", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to send contractor email")
	}

	if err := t.ChangeStatus(vo.StatusAwaitingContractor); err != nil {
		// Email went out but the lifecycle refuses the transition. Surface
		// the conflict; staff resolve the status manually.
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket after email", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	event := ticket.NewContractorEmailSentEvent(
		t.ID(), t.TenantID(), t.Reference(), candidate.ID, c.Name(), c.Email(),
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish contractor email sent event", "error", err)
	}

	uc.logger.Infow("contractor email sent",
		"ticket_id", t.ID(), "contractor_id", candidate.ID, "recipient", c.Email())

	return &SendContractorEmailResult{
		TicketID:       t.ID(),
		ContractorID:   candidate.ID,
		ContractorName: c.Name(),
		Recipient:      c.Email(),
		Status:         t.Status().String(),
	}, nil
}

func selectCandidate(result *triage.TriageResult, contractorID string) (*triage.RankedContractor, error) {
	if contractorID == "" {
		top := result.TopContractor()
		if top == nil {
			return nil, errors.NewConflictError("triage result has no candidates")
		}
		return top, nil
	}

	for _, rc := range result.RankedContractors() {
		if rc.ID == contractorID {
			candidate := rc
			return &candidate, nil
		}
	}
	return nil, errors.NewNotFoundError("contractor is not among the ranked candidates")
}

// splitDraft separates the "Subject:" line the draft generator opens with
// from the rest of the text, so the delivered email does not repeat its own
// subject in the body. A draft without that line is sent as-is.
func splitDraft(draft string) (subject, body string) {
	const subjectPrefix = "Subject: "
	if !strings.HasPrefix(draft, subjectPrefix) {
		return "", draft
	}

	rest := draft[len(subjectPrefix):]
	idx := strings.Index(rest, "\n")
	if idx < 0 {
		return rest, ""
	}
	return rest[:idx], strings.TrimLeft(rest[idx+1:], "\n")
}
