package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/infrastructure/persistence/mappers"
	"propdesk/internal/infrastructure/persistence/models"
	"propdesk/internal/shared/db"
)

type ContractorRepository struct {
	db     *gorm.DB
	mapper mappers.ContractorMapper
}

func NewContractorRepository(db *gorm.DB) *ContractorRepository {
	return &ContractorRepository{
		db:     db,
		mapper: mappers.NewContractorMapper(),
	}
}

func (r *ContractorRepository) Save(ctx context.Context, c *contractor.Contractor) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save contractor: %w", err)
	}
	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return r.replacePropertyLinks(tx, c.ID(), c.PropertyIDs())
}

func (r *ContractorRepository) Update(ctx context.Context, c *contractor.Contractor) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ContractorModel{}).
		Where("id = ? AND tenant_id = ?", model.ID, model.TenantID).
		Updates(map[string]interface{}{
			"name":              model.Name,
			"email":             model.Email,
			"phone":             model.Phone,
			"trade_types":       model.TradeTypes,
			"service_zip_codes": model.ServiceZipCodes,
			"service_cities":    model.ServiceCities,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update contractor: %w", result.Error)
	}

	return r.replacePropertyLinks(tx, c.ID(), c.PropertyIDs())
}

func (r *ContractorRepository) Delete(ctx context.Context, tenantID, contractorID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("id = ? AND tenant_id = ?", contractorID, tenantID).
		Delete(&models.ContractorModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete contractor: %w", result.Error)
	}

	if err := tx.
		Where("contractor_id = ?", contractorID).
		Delete(&models.ContractorPropertyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete contractor property links: %w", err)
	}

	return nil
}

func (r *ContractorRepository) GetByID(ctx context.Context, tenantID, contractorID uint) (*contractor.Contractor, error) {
	var model models.ContractorModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("id = ? AND tenant_id = ?", contractorID, tenantID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contractor: %w", err)
	}

	propertyIDs, err := r.loadPropertyLinks(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, propertyIDs)
}

func (r *ContractorRepository) List(ctx context.Context, tenantID uint, page, pageSize int) ([]*contractor.Contractor, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ContractorModel{}).Where("tenant_id = ?", tenantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contractors: %w", err)
	}

	var contractorModels []models.ContractorModel
	err := query.
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&contractorModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contractors: %w", err)
	}

	contractors, err := r.toDomainList(tx, contractorModels)
	if err != nil {
		return nil, 0, err
	}
	return contractors, total, nil
}

// FindCandidates applies the eligibility filter: trade tag must contain the
// category AND at least one location branch (explicit property link, serviced
// zip, serviced city) must match. A branch without a usable value is excluded
// from the OR entirely, so absent values never match everything; with no
// usable branch at all the query is skipped.
func (r *ContractorRepository) FindCandidates(ctx context.Context, query contractor.CandidateQuery) ([]*contractor.Contractor, error) {
	if !query.HasUsableBranch() {
		return nil, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	categoryJSON, err := json.Marshal(query.Category.String())
	if err != nil {
		return nil, fmt.Errorf("marshal category: %w", err)
	}

	q := tx.Model(&models.ContractorModel{}).
		Where("tenant_id = ?", query.TenantID).
		Where("JSON_CONTAINS(trade_types, ?)", string(categoryJSON))

	locationClauses := ""
	locationArgs := []interface{}{}

	if query.PropertyID != nil {
		locationClauses += "id IN (SELECT contractor_id FROM contractor_properties WHERE property_id = ?)"
		locationArgs = append(locationArgs, *query.PropertyID)
	}
	if query.ZipCode != "" {
		if locationClauses != "" {
			locationClauses += " OR "
		}
		zipJSON, err := json.Marshal(query.ZipCode)
		if err != nil {
			return nil, fmt.Errorf("marshal zip code: %w", err)
		}
		locationClauses += "JSON_CONTAINS(service_zip_codes, ?)"
		locationArgs = append(locationArgs, string(zipJSON))
	}
	if query.City != "" {
		if locationClauses != "" {
			locationClauses += " OR "
		}
		cityJSON, err := json.Marshal(query.City)
		if err != nil {
			return nil, fmt.Errorf("marshal city: %w", err)
		}
		locationClauses += "JSON_CONTAINS(service_cities, ?)"
		locationArgs = append(locationArgs, string(cityJSON))
	}

	q = q.Where(locationClauses, locationArgs...)

	limit := query.Limit
	if limit <= 0 {
		limit = 3
	}

	var contractorModels []models.ContractorModel
	if err := q.Order("id ASC").Limit(limit).Find(&contractorModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find candidate contractors: %w", err)
	}

	return r.toDomainList(tx, contractorModels)
}

func (r *ContractorRepository) toDomainList(tx *gorm.DB, contractorModels []models.ContractorModel) ([]*contractor.Contractor, error) {
	contractors := make([]*contractor.Contractor, 0, len(contractorModels))
	for i := range contractorModels {
		propertyIDs, err := r.loadPropertyLinks(tx, contractorModels[i].ID)
		if err != nil {
			return nil, err
		}
		c, err := r.mapper.ToDomain(&contractorModels[i], propertyIDs)
		if err != nil {
			return nil, err
		}
		contractors = append(contractors, c)
	}
	return contractors, nil
}

func (r *ContractorRepository) loadPropertyLinks(tx *gorm.DB, contractorID uint) ([]uint, error) {
	var propertyIDs []uint
	err := tx.
		Model(&models.ContractorPropertyModel{}).
		Where("contractor_id = ?", contractorID).
		Order("property_id ASC").
		Pluck("property_id", &propertyIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load contractor property links: %w", err)
	}
	return propertyIDs, nil
}

func (r *ContractorRepository) replacePropertyLinks(tx *gorm.DB, contractorID uint, propertyIDs []uint) error {
	if err := tx.
		Where("contractor_id = ?", contractorID).
		Delete(&models.ContractorPropertyModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear contractor property links: %w", err)
	}

	if len(propertyIDs) == 0 {
		return nil
	}

	links := make([]models.ContractorPropertyModel, 0, len(propertyIDs))
	for _, propertyID := range propertyIDs {
		links = append(links, models.ContractorPropertyModel{
			ContractorID: contractorID,
			PropertyID:   propertyID,
		})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to save contractor property links: %w", err)
	}

	return nil
}
