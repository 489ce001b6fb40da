package usecases

import (
	"context"
	"time"

	"propdesk/internal/domain/property"
	"propdesk/internal/domain/shared/events"
	"propdesk/internal/domain/tenant"
	"propdesk/internal/domain/ticket"
	vo "propdesk/internal/domain/ticket/valueobjects"
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
	saveFunc                func(ctx context.Context, result *triage.TriageResult) error
	getLatestByTicketIDFunc func(ctx context.Context, ticketID uint) (*triage.TriageResult, error)
	listByTicketIDFunc      func(ctx context.Context, ticketID uint) ([]*triage.TriageResult, error)
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

type mockTenantRepository struct {
	saveFunc      func(ctx context.Context, t *tenant.Tenant) error
	getByIDFunc   func(ctx context.Context, id uint) (*tenant.Tenant, error)
	getBySlugFunc func(ctx context.Context, slug string) (*tenant.Tenant, error)
	listFunc      func(ctx context.Context) ([]*tenant.Tenant, error)
}

func (m *mockTenantRepository) Save(ctx context.Context, t *tenant.Tenant) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return nil
}

func (m *mockTenantRepository) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockTenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockPropertyRepository struct {
	saveFunc    func(ctx context.Context, p *property.Property) error
	updateFunc  func(ctx context.Context, p *property.Property) error
	deleteFunc  func(ctx context.Context, tenantID, propertyID uint) error
	getByIDFunc func(ctx context.Context, tenantID, propertyID uint) (*property.Property, error)
	listFunc    func(ctx context.Context, tenantID uint, page, pageSize int) ([]*property.Property, int64, error)
}

func (m *mockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	return nil
}

func (m *mockPropertyRepository) Update(ctx context.Context, p *property.Property) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockPropertyRepository) Delete(ctx context.Context, tenantID, propertyID uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, tenantID, propertyID)
	}
	return nil
}

func (m *mockPropertyRepository) GetByID(ctx context.Context, tenantID, propertyID uint) (*property.Property, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, tenantID, propertyID)
	}
	return nil, nil
}

func (m *mockPropertyRepository) List(ctx context.Context, tenantID uint, page, pageSize int) ([]*property.Property, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, tenantID, page, pageSize)
	}
	return nil, 0, nil
}

type mockRanker struct {
	rankFunc func(ctx context.Context, tenantID uint, category vo.Category, propertyID *uint) ([]triage.RankedContractor, error)
}

func (m *mockRanker) Rank(ctx context.Context, tenantID uint, category vo.Category, propertyID *uint) ([]triage.RankedContractor, error) {
	if m.rankFunc != nil {
		return m.rankFunc(ctx, tenantID, category, propertyID)
	}
	return []triage.RankedContractor{{
		ID: "external-fallback", Name: "Generic Trade Partner",
		Trade: category, MatchScore: 60, Source: triage.SourceExternalFallback,
	}}, nil
}

// passthroughTxMgr executes the function directly, no transaction semantics.
type passthroughTxMgr struct {
	err error
}

func (m *passthroughTxMgr) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
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

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
