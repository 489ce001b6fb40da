package usecases

import (
	"context"
	"time"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/domain/shared/events"
	"propdesk/internal/domain/ticket"
	"propdesk/internal/domain/triage"
	"propdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	saveFunc                  func(ctx context.Context, t *ticket.Ticket) error
	updateFunc                func(ctx context.Context, t *ticket.Ticket) error
	getByIDFunc               func(ctx context.Context, tenantID, id uint) (*ticket.Ticket, error)
	getByIDUnscopedFunc       func(ctx context.Context, id uint) (*ticket.Ticket, error)
	getByReferenceFunc        func(ctx context.Context, tenantID uint, reference string) (*ticket.Ticket, error)
	listFunc                  func(ctx context.Context, tenantID uint, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error)
	saveMessageFunc           func(ctx context.Context, m *ticket.Message) error
	getMessagesFunc           func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
	listStuckInProcessingFunc func(ctx context.Context, cutoff time.Time, limit int) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, tenantID, id uint) (*ticket.Ticket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, tenantID, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByIDUnscoped(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.getByIDUnscopedFunc != nil {
		return m.getByIDUnscopedFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByReference(ctx context.Context, tenantID uint, reference string) (*ticket.Ticket, error) {
	if m.getByReferenceFunc != nil {
		return m.getByReferenceFunc(ctx, tenantID, reference)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, tenantID uint, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, tenantID, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) SaveMessage(ctx context.Context, msg *ticket.Message) error {
	if m.saveMessageFunc != nil {
		return m.saveMessageFunc(ctx, msg)
	}
	return nil
}

func (m *mockTicketRepository) GetMessages(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.getMessagesFunc != nil {
		return m.getMessagesFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListStuckInProcessing(ctx context.Context, cutoff time.Time, limit int) ([]*ticket.Ticket, error) {
	if m.listStuckInProcessingFunc != nil {
		return m.listStuckInProcessingFunc(ctx, cutoff, limit)
	}
	return nil, nil
}

type mockTriageRepository struct {
	saveFunc               func(ctx context.Context, result *triage.TriageResult) error
	getLatestByTicketIDFunc func(ctx context.Context, ticketID uint) (*triage.TriageResult, error)
	listByTicketIDFunc     func(ctx context.Context, ticketID uint) ([]*triage.TriageResult, error)
}

func (m *mockTriageRepository) Save(ctx context.Context, result *triage.TriageResult) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, result)
	}
	return nil
}

func (m *mockTriageRepository) GetLatestByTicketID(ctx context.Context, ticketID uint) (*triage.TriageResult, error) {
	if m.getLatestByTicketIDFunc != nil {
		return m.getLatestByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTriageRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*triage.TriageResult, error) {
	if m.listByTicketIDFunc != nil {
		return m.listByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockContractorRepository struct {
	saveFunc           func(ctx context.Context, c *contractor.Contractor) error
	updateFunc         func(ctx context.Context, c *contractor.Contractor) error
	deleteFunc         func(ctx context.Context, tenantID, contractorID uint) error
	getByIDFunc        func(ctx context.Context, tenantID, contractorID uint) (*contractor.Contractor, error)
	listFunc           func(ctx context.Context, tenantID uint, page, pageSize int) ([]*contractor.Contractor, int64, error)
	findCandidatesFunc func(ctx context.Context, query contractor.CandidateQuery) ([]*contractor.Contractor, error)
}

func (m *mockContractorRepository) Save(ctx context.Context, c *contractor.Contractor) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	return nil
}

func (m *mockContractorRepository) Update(ctx context.Context, c *contractor.Contractor) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, c)
	}
	return nil
}

func (m *mockContractorRepository) Delete(ctx context.Context, tenantID, contractorID uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, tenantID, contractorID)
	}
	return nil
}

func (m *mockContractorRepository) GetByID(ctx context.Context, tenantID, contractorID uint) (*contractor.Contractor, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, tenantID, contractorID)
	}
	return nil, nil
}

func (m *mockContractorRepository) List(ctx context.Context, tenantID uint, page, pageSize int) ([]*contractor.Contractor, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, tenantID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockContractorRepository) FindCandidates(ctx context.Context, query contractor.CandidateQuery) ([]*contractor.Contractor, error) {
	if m.findCandidatesFunc != nil {
		return m.findCandidatesFunc(ctx, query)
	}
	return nil, nil
}

type mockReferenceGenerator struct {
	generateFunc func(ctx context.Context) (string, error)
}

func (m *mockReferenceGenerator) Generate(ctx context.Context) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return "tk_test0001", nil
}

type mockTriageEnqueuer struct {
	enqueueFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockTriageEnqueuer) Enqueue(ctx context.Context, ticketID uint) error {
	if m.enqueueFunc != nil {
		return m.enqueueFunc(ctx, ticketID)
	}
	return nil
}

type mockEmailSender struct {
	sendFunc func(to, subject, body string) error
}

func (m *mockEmailSender) Send(to, subject, body string) error {
	if m.sendFunc != nil {
		return m.sendFunc(to, subject, body)
	}
	return nil
}

type mockEventPublisher struct {
	publishFunc    func(event events.DomainEvent) error
	publishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	if m.publishAllFunc != nil {
		return m.publishAllFunc(evts)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                     {}
func (m *mockLogger) Info(msg string, args ...any)                      {}
func (m *mockLogger) Warn(msg string, args ...any)                      {}
func (m *mockLogger) Error(msg string, args ...any)                     {}
func (m *mockLogger) With(args ...any) logger.Interface                 { return m }
func (m *mockLogger) Named(name string) logger.Interface                { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})   {}
