package usecases

import (
	"context"
	"fmt"

	"propdesk/internal/domain/property"
	"propdesk/internal/domain/shared/events"
	"propdesk/internal/domain/tenant"
	"propdesk/internal/domain/ticket"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/domain/triage"
	"propdesk/internal/shared/logger"
)

// TriageTicketUseCase is the pipeline orchestrator, invoked by the queue
// consumer. It runs classifier, urgency resolver, ranker and draft generator
// over the current ticket state, then persists the result and the updated
// ticket in one transaction.
//
// It is safe to re-invoke: a duplicate run adds a TriageResult row and
// overwrites category/urgency with freshly computed values (last write wins).
// A ticket id that no longer resolves is a benign no-op, since queue entries
// can outlive their tickets.
type TriageTicketUseCase struct {
	ticketRepo      ticket.Repository
	triageRepo      triage.Repository
	tenantRepo      tenant.Repository
	propertyRepo    property.Repository
	classifier      triage.Classifier
	urgencyResolver triage.UrgencyResolver
	ranker          triage.ContractorRanker
	draftGenerator  triage.DraftGenerator
	txMgr           TransactionManager
	publisher       events.EventPublisher
	logger          logger.Interface
}

func NewTriageTicketUseCase(
	ticketRepo ticket.Repository,
	triageRepo triage.Repository,
	tenantRepo tenant.Repository,
	propertyRepo property.Repository,
	classifier triage.Classifier,
	urgencyResolver triage.UrgencyResolver,
	ranker triage.ContractorRanker,
	draftGenerator triage.DraftGenerator,
	txMgr TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *TriageTicketUseCase {
	return &TriageTicketUseCase{
		ticketRepo:      ticketRepo,
		triageRepo:      triageRepo,
		tenantRepo:      tenantRepo,
		propertyRepo:    propertyRepo,
		classifier:      classifier,
		urgencyResolver: urgencyResolver,
		ranker:          ranker,
		draftGenerator:  draftGenerator,
		txMgr:           txMgr,
		publisher:       publisher,
		logger:          logger,
	}
}

func (uc *TriageTicketUseCase) Execute(ctx context.Context, ticketID uint) error {
	t, err := uc.ticketRepo.GetByIDUnscoped(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("load ticket %d: %w", ticketID, err)
	}
	if t == nil {
		uc.logger.Infow("triage skipped, ticket no longer exists", "ticket_id", ticketID)
		return nil
	}

	category := uc.classifier.Classify(t.Description())
	urgency := uc.urgencyResolver.Resolve(t.Description(), t.Urgency())

	ranked, err := uc.ranker.Rank(ctx, t.TenantID(), category, t.PropertyID())
	if err != nil {
		return fmt.Errorf("rank contractors for ticket %d: %w", ticketID, err)
	}

	draft := uc.draftGenerator.Generate(uc.buildDraftInput(ctx, t, category, ranked))

	result, err := triage.NewTriageResult(t.ID(), category, urgency, ranked, draft)
	if err != nil {
		return fmt.Errorf("build triage result for ticket %d: %w", ticketID, err)
	}

	if err := t.ApplyTriage(category, urgency); err != nil {
		return fmt.Errorf("apply triage to ticket %d: %w", ticketID, err)
	}
	// A concurrent run or a staff action may already have moved the ticket
	// past ai_processing; the new result still lands, only the transition
	// is skipped.
	if t.Status().IsAIProcessing() {
		if err := t.ChangeStatus(vo.StatusReady); err != nil {
			return fmt.Errorf("transition ticket %d to ready: %w", ticketID, err)
		}
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.triageRepo.Save(txCtx, result); err != nil {
			return fmt.Errorf("save triage result: %w", err)
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("update ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("persist triage for ticket %d: %w", ticketID, err)
	}

	event := ticket.NewTicketTriageCompletedEvent(
		t.ID(), t.TenantID(), t.Reference(), category.String(), urgency.String(),
	)
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish triage completed event", "error", err)
	}

	uc.logger.Infow("ticket triaged",
		"ticket_id", t.ID(),
		"category", category.String(),
		"urgency", urgency.String(),
		"candidates", len(ranked),
	)

	return nil
}

// buildDraftInput resolves display names for the email template. Lookups that
// fail leave their field empty and the template falls back to placeholders;
// a missing property name is not worth failing a triage run over.
func (uc *TriageTicketUseCase) buildDraftInput(ctx context.Context, t *ticket.Ticket, category vo.Category, ranked []triage.RankedContractor) triage.DraftInput {
	input := triage.DraftInput{
		Reference:         t.Reference(),
		Category:          category,
		Description:       t.Description(),
		UnitLabel:         t.UnitLabel(),
		PermissionToEnter: t.PermissionToEnter(),
	}

	if len(ranked) > 0 {
		input.ContractorName = ranked[0].Name
	}

	if t.PropertyID() != nil {
		if prop, err := uc.propertyRepo.GetByID(ctx, t.TenantID(), *t.PropertyID()); err == nil && prop != nil {
			input.PropertyName = prop.Name()
		}
	}

	if tn, err := uc.tenantRepo.GetByID(ctx, t.TenantID()); err == nil && tn != nil {
		input.TenantName = tn.Name()
	}

	return input
}
