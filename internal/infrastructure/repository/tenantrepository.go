package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"propdesk/internal/domain/tenant"
	"propdesk/internal/infrastructure/persistence/mappers"
	"propdesk/internal/infrastructure/persistence/models"
	"propdesk/internal/shared/db"
)

type TenantRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{
		db:     db,
		mapper: mappers.NewTenantMapper(),
	}
}

func (r *TenantRepository) Save(ctx context.Context, t *tenant.Tenant) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save tenant: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TenantRepository) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	var model models.TenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var model models.TenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find tenant by slug: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	var tenantModels []models.TenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&tenantModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	tenants := make([]*tenant.Tenant, 0, len(tenantModels))
	for i := range tenantModels {
		t, err := r.mapper.ToDomain(&tenantModels[i])
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}

	return tenants, nil
}
