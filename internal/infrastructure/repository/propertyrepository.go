package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"propdesk/internal/domain/property"
	"propdesk/internal/infrastructure/persistence/mappers"
	"propdesk/internal/infrastructure/persistence/models"
	"propdesk/internal/shared/db"
)

type PropertyRepository struct {
	db     *gorm.DB
	mapper mappers.PropertyMapper
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{
		db:     db,
		mapper: mappers.NewPropertyMapper(),
	}
}

func (r *PropertyRepository) Save(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}
	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return r.replaceUnits(tx, p)
}

func (r *PropertyRepository) Update(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PropertyModel{}).
		Where("id = ? AND tenant_id = ?", model.ID, model.TenantID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"street":     model.Street,
			"zip_code":   model.ZipCode,
			"city":       model.City,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update property: %w", result.Error)
	}

	return r.replaceUnits(tx, p)
}

func (r *PropertyRepository) Delete(ctx context.Context, tenantID, propertyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("id = ? AND tenant_id = ?", propertyID, tenantID).
		Delete(&models.PropertyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete property: %w", result.Error)
	}

	if err := tx.
		Where("property_id = ?", propertyID).
		Delete(&models.UnitModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete property units: %w", err)
	}

	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, tenantID, propertyID uint) (*property.Property, error) {
	var model models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("id = ? AND tenant_id = ?", propertyID, tenantID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	unitModels, err := r.loadUnits(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, unitModels)
}

func (r *PropertyRepository) List(ctx context.Context, tenantID uint, page, pageSize int) ([]*property.Property, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.PropertyModel{}).Where("tenant_id = ?", tenantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	var propertyModels []models.PropertyModel
	err := query.
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&propertyModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}

	properties := make([]*property.Property, 0, len(propertyModels))
	for i := range propertyModels {
		unitModels, err := r.loadUnits(tx, propertyModels[i].ID)
		if err != nil {
			return nil, 0, err
		}
		p, err := r.mapper.ToDomain(&propertyModels[i], unitModels)
		if err != nil {
			return nil, 0, err
		}
		properties = append(properties, p)
	}

	return properties, total, nil
}

func (r *PropertyRepository) loadUnits(tx *gorm.DB, propertyID uint) ([]*models.UnitModel, error) {
	var unitModels []*models.UnitModel
	err := tx.
		Where("property_id = ?", propertyID).
		Order("id ASC").
		Find(&unitModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load property units: %w", err)
	}
	return unitModels, nil
}

func (r *PropertyRepository) replaceUnits(tx *gorm.DB, p *property.Property) error {
	if err := tx.
		Where("property_id = ?", p.ID()).
		Delete(&models.UnitModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear property units: %w", err)
	}

	unitModels := r.mapper.UnitsToModels(p)
	if len(unitModels) == 0 {
		return nil
	}

	for _, u := range unitModels {
		u.ID = 0
		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("failed to save property unit: %w", err)
		}
	}

	return nil
}
