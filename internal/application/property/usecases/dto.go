package usecases

import (
	"time"

	"propdesk/internal/domain/property"
)

type PropertyDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Street    string    `json:"street"`
	ZipCode   string    `json:"zip_code"`
	City      string    `json:"city"`
	Units     []UnitDTO `json:"units"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UnitDTO struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

func toPropertyDTO(p *property.Property) *PropertyDTO {
	if p == nil {
		return nil
	}

	units := make([]UnitDTO, 0, len(p.Units()))
	for _, u := range p.Units() {
		units = append(units, UnitDTO{ID: u.ID, Label: u.Label})
	}

	return &PropertyDTO{
		ID:        p.ID(),
		Name:      p.Name(),
		Street:    p.Street(),
		ZipCode:   p.ZipCode(),
		City:      p.City(),
		Units:     units,
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
