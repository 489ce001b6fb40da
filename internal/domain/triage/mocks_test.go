package triage

import (
	"context"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/domain/property"
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
