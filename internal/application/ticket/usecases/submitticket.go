package usecases

import (
	"context"
	"time"

	"propdesk/internal/domain/shared/events"
	"propdesk/internal/domain/ticket"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
	"propdesk/internal/shared/services/sanitize"
)

type SubmitTicketCommand struct {
	TenantID          uint
	Type              string
	Description       string
	Urgency           string
	ReporterName      string
	ReporterEmail     string
	ReporterPhone     string
	PropertyID        *uint
	UnitLabel         string
	PermissionToEnter bool
}

type SubmitTicketResult struct {
	TicketID  uint
	Reference string
	Status    string
	CreatedAt time.Time
}

// SubmitTicketUseCase handles the public damage-report form. The ticket is
// created in ai_processing and a triage job is queued; submission never waits
// for the pipeline.
type SubmitTicketUseCase struct {
	ticketRepo   ticket.Repository
	refGenerator ticket.ReferenceGenerator
	enqueuer     TriageEnqueuer
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewSubmitTicketUseCase(
	ticketRepo ticket.Repository,
	refGenerator ticket.ReferenceGenerator,
	enqueuer TriageEnqueuer,
	publisher events.EventPublisher,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo:   ticketRepo,
		refGenerator: refGenerator,
		enqueuer:     enqueuer,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	uc.logger.Infow("executing submit ticket use case", "tenant_id", cmd.TenantID, "type", cmd.Type)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid submit ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.TenantID,
		vo.TicketType(cmd.Type),
		sanitize.Text(cmd.Description),
		vo.Urgency(cmd.Urgency),
		sanitize.Text(cmd.ReporterName),
		sanitize.Text(cmd.ReporterEmail),
		sanitize.Text(cmd.ReporterPhone),
		cmd.PropertyID,
		sanitize.Text(cmd.UnitLabel),
		cmd.PermissionToEnter,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	reference, err := uc.refGenerator.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket reference", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket reference")
	}
	if err := newTicket.SetReference(reference); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if err := uc.enqueuer.Enqueue(ctx, newTicket.ID()); err != nil {
		// The sweep job re-enqueues stuck tickets, so a queue outage at
		// submission time delays triage instead of failing the report.
		uc.logger.Errorw("failed to enqueue triage job", "error", err, "ticket_id", newTicket.ID())
	}

	event := ticket.NewTicketSubmittedEvent(
		newTicket.ID(),
		newTicket.TenantID(),
		newTicket.Reference(),
		newTicket.Type().String(),
		newTicket.Urgency().String(),
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish ticket submitted event", "error", err)
	}

	uc.logger.Infow("ticket submitted", "ticket_id", newTicket.ID(), "reference", newTicket.Reference())

	return &SubmitTicketResult{
		TicketID:  newTicket.ID(),
		Reference: newTicket.Reference(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *SubmitTicketUseCase) validateCommand(cmd SubmitTicketCommand) error {
	if cmd.TenantID == 0 {
		return errors.NewValidationError("tenant ID is required")
	}

	ticketType := vo.TicketType(cmd.Type)
	if !ticketType.IsValid() {
		return errors.NewValidationError("invalid ticket type")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	urgency := vo.Urgency(cmd.Urgency)
	if !urgency.IsValid() {
		return errors.NewValidationError("invalid urgency")
	}

	if len(cmd.ReporterName) == 0 {
		return errors.NewValidationError("reporter name is required")
	}

	return nil
}
