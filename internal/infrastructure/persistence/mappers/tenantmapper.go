package mappers

import (
	"time"

	"propdesk/internal/domain/tenant"
	"propdesk/internal/infrastructure/persistence/models"
)

type TenantMapper interface {
	ToModel(t *tenant.Tenant) *models.TenantModel
	ToDomain(model *models.TenantModel) (*tenant.Tenant, error)
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToModel(t *tenant.Tenant) *models.TenantModel {
	return &models.TenantModel{
		ID:        t.ID(),
		Name:      t.Name(),
		Slug:      t.Slug(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func (m *TenantMapperImpl) ToDomain(model *models.TenantModel) (*tenant.Tenant, error) {
	return tenant.ReconstructTenant(
		model.ID,
		model.Name,
		model.Slug,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
