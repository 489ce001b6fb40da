package usecases

import (
	"time"

	"propdesk/internal/domain/contractor"
)

type ContractorDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	TradeTypes      []string  `json:"trade_types"`
	ServiceZipCodes []string  `json:"service_zip_codes"`
	ServiceCities   []string  `json:"service_cities"`
	PropertyIDs     []uint    `json:"property_ids"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toContractorDTO(c *contractor.Contractor) *ContractorDTO {
	if c == nil {
		return nil
	}

	trades := make([]string, 0, len(c.TradeTypes()))
	for _, tt := range c.TradeTypes() {
		trades = append(trades, tt.String())
	}

	return &ContractorDTO{
		ID:              c.ID(),
		Name:            c.Name(),
		Email:           c.Email(),
		Phone:           c.Phone(),
		TradeTypes:      trades,
		ServiceZipCodes: c.ServiceZipCodes(),
		ServiceCities:   c.ServiceCities(),
		PropertyIDs:     c.PropertyIDs(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}
