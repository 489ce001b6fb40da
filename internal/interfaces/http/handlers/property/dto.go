package property

import "propdesk/internal/application/property/usecases"

type CreatePropertyRequest struct {
	Name    string   `json:"name" binding:"required,max=200"`
	Street  string   `json:"street" binding:"max=200"`
	ZipCode string   `json:"zip_code" binding:"max=20"`
	City    string   `json:"city" binding:"max=100"`
	Units   []string `json:"units"`
}

func (r *CreatePropertyRequest) ToCommand(tenantID uint) usecases.CreatePropertyCommand {
	return usecases.CreatePropertyCommand{
		TenantID: tenantID,
		Name:     r.Name,
		Street:   r.Street,
		ZipCode:  r.ZipCode,
		City:     r.City,
		Units:    r.Units,
	}
}

type UpdatePropertyRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Street  string `json:"street" binding:"max=200"`
	ZipCode string `json:"zip_code" binding:"max=20"`
	City    string `json:"city" binding:"max=100"`
}

func (r *UpdatePropertyRequest) ToCommand(tenantID, propertyID uint) usecases.UpdatePropertyCommand {
	return usecases.UpdatePropertyCommand{
		TenantID:   tenantID,
		PropertyID: propertyID,
		Name:       r.Name,
		Street:     r.Street,
		ZipCode:    r.ZipCode,
		City:       r.City,
	}
}
