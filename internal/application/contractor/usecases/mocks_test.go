package usecases

import (
	"context"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/shared/logger"
)

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
