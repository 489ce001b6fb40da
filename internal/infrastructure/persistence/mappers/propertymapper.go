package mappers

import (
	"time"

	"propdesk/internal/domain/property"
	"propdesk/internal/infrastructure/persistence/models"
)

type PropertyMapper interface {
	ToModel(p *property.Property) *models.PropertyModel
	UnitsToModels(p *property.Property) []*models.UnitModel
	ToDomain(model *models.PropertyModel, unitModels []*models.UnitModel) (*property.Property, error)
}

type PropertyMapperImpl struct{}

func NewPropertyMapper() PropertyMapper {
	return &PropertyMapperImpl{}
}

func (m *PropertyMapperImpl) ToModel(p *property.Property) *models.PropertyModel {
	return &models.PropertyModel{
		ID:        p.ID(),
		TenantID:  p.TenantID(),
		Name:      p.Name(),
		Street:    p.Street(),
		ZipCode:   p.ZipCode(),
		City:      p.City(),
		CreatedAt: p.CreatedAt().UnixMilli(),
		UpdatedAt: p.UpdatedAt().UnixMilli(),
	}
}

func (m *PropertyMapperImpl) UnitsToModels(p *property.Property) []*models.UnitModel {
	unitModels := make([]*models.UnitModel, 0, len(p.Units()))
	for _, u := range p.Units() {
		unitModels = append(unitModels, &models.UnitModel{
			ID:         u.ID,
			PropertyID: p.ID(),
			Label:      u.Label,
		})
	}
	return unitModels
}

func (m *PropertyMapperImpl) ToDomain(model *models.PropertyModel, unitModels []*models.UnitModel) (*property.Property, error) {
	units := make([]property.Unit, 0, len(unitModels))
	for _, u := range unitModels {
		units = append(units, property.Unit{ID: u.ID, Label: u.Label})
	}

	return property.ReconstructProperty(
		model.ID,
		model.TenantID,
		model.Name,
		model.Street,
		model.ZipCode,
		model.City,
		units,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
