package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"propdesk/internal/domain/contractor"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/infrastructure/persistence/models"
)

// ContractorMapper converts between contractor entities and persistence
// models. Property links live in a join table and are passed separately.
type ContractorMapper interface {
	ToModel(c *contractor.Contractor) (*models.ContractorModel, error)
	ToDomain(model *models.ContractorModel, propertyIDs []uint) (*contractor.Contractor, error)
}

type ContractorMapperImpl struct{}

func NewContractorMapper() ContractorMapper {
	return &ContractorMapperImpl{}
}

func (m *ContractorMapperImpl) ToModel(c *contractor.Contractor) (*models.ContractorModel, error) {
	trades := make([]string, 0, len(c.TradeTypes()))
	for _, t := range c.TradeTypes() {
		trades = append(trades, t.String())
	}

	tradesJSON, err := json.Marshal(trades)
	if err != nil {
		return nil, fmt.Errorf("marshal trade types: %w", err)
	}
	zipsJSON, err := json.Marshal(c.ServiceZipCodes())
	if err != nil {
		return nil, fmt.Errorf("marshal service zip codes: %w", err)
	}
	citiesJSON, err := json.Marshal(c.ServiceCities())
	if err != nil {
		return nil, fmt.Errorf("marshal service cities: %w", err)
	}

	return &models.ContractorModel{
		ID:              c.ID(),
		TenantID:        c.TenantID(),
		Name:            c.Name(),
		Email:           c.Email(),
		Phone:           c.Phone(),
		TradeTypes:      datatypes.JSON(tradesJSON),
		ServiceZipCodes: datatypes.JSON(zipsJSON),
		ServiceCities:   datatypes.JSON(citiesJSON),
		CreatedAt:       c.CreatedAt().UnixMilli(),
		UpdatedAt:       c.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *ContractorMapperImpl) ToDomain(model *models.ContractorModel, propertyIDs []uint) (*contractor.Contractor, error) {
	var tradeStrings []string
	if len(model.TradeTypes) > 0 {
		if err := json.Unmarshal(model.TradeTypes, &tradeStrings); err != nil {
			return nil, fmt.Errorf("contractor %d: unmarshal trade types: %w", model.ID, err)
		}
	}
	trades := make([]vo.Category, 0, len(tradeStrings))
	for _, s := range tradeStrings {
		category, err := vo.NewCategory(s)
		if err != nil {
			return nil, fmt.Errorf("contractor %d: %w", model.ID, err)
		}
		trades = append(trades, category)
	}

	var zips []string
	if len(model.ServiceZipCodes) > 0 {
		if err := json.Unmarshal(model.ServiceZipCodes, &zips); err != nil {
			return nil, fmt.Errorf("contractor %d: unmarshal zip codes: %w", model.ID, err)
		}
	}

	var cities []string
	if len(model.ServiceCities) > 0 {
		if err := json.Unmarshal(model.ServiceCities, &cities); err != nil {
			return nil, fmt.Errorf("contractor %d: unmarshal cities: %w", model.ID, err)
		}
	}

	return contractor.ReconstructContractor(
		model.ID,
		model.TenantID,
		model.Name,
		model.Email,
		model.Phone,
		trades,
		zips,
		cities,
		propertyIDs,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
