package contractor

import "propdesk/internal/application/contractor/usecases"

type CreateContractorRequest struct {
	Name            string   `json:"name" binding:"required,max=200"`
	Email           string   `json:"email" binding:"omitempty,email"`
	Phone           string   `json:"phone" binding:"max=50"`
	TradeTypes      []string `json:"trade_types" binding:"required,min=1"`
	ServiceZipCodes []string `json:"service_zip_codes"`
	ServiceCities   []string `json:"service_cities"`
	PropertyIDs     []uint   `json:"property_ids"`
}

func (r *CreateContractorRequest) ToCommand(tenantID uint) usecases.CreateContractorCommand {
	return usecases.CreateContractorCommand{
		TenantID:        tenantID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		TradeTypes:      r.TradeTypes,
		ServiceZipCodes: r.ServiceZipCodes,
		ServiceCities:   r.ServiceCities,
		PropertyIDs:     r.PropertyIDs,
	}
}

type UpdateContractorRequest struct {
	Name            string   `json:"name" binding:"required,max=200"`
	Email           string   `json:"email" binding:"omitempty,email"`
	Phone           string   `json:"phone" binding:"max=50"`
	TradeTypes      []string `json:"trade_types" binding:"required,min=1"`
	ServiceZipCodes []string `json:"service_zip_codes"`
	ServiceCities   []string `json:"service_cities"`
	// PropertyIDs nil leaves links untouched; a value replaces them.
	PropertyIDs *[]uint `json:"property_ids"`
}

func (r *UpdateContractorRequest) ToCommand(tenantID, contractorID uint) usecases.UpdateContractorCommand {
	return usecases.UpdateContractorCommand{
		TenantID:        tenantID,
		ContractorID:    contractorID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		TradeTypes:      r.TradeTypes,
		ServiceZipCodes: r.ServiceZipCodes,
		ServiceCities:   r.ServiceCities,
		PropertyIDs:     r.PropertyIDs,
	}
}
