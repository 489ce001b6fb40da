package ticket

import (
	"github.com/gin-gonic/gin"

	"propdesk/internal/application/ticket/usecases"
	"propdesk/internal/shared/utils"
)

type SubmitTicketRequest struct {
	Type              string `json:"type" binding:"required"`
	Description       string `json:"description" binding:"required,max=5000"`
	Urgency           string `json:"urgency"`
	ReporterName      string `json:"reporter_name" binding:"required,max=200"`
	ReporterEmail     string `json:"reporter_email" binding:"omitempty,email"`
	ReporterPhone     string `json:"reporter_phone" binding:"max=50"`
	PropertyID        *uint  `json:"property_id"`
	UnitLabel         string `json:"unit_label" binding:"max=100"`
	PermissionToEnter bool   `json:"permission_to_enter"`
}

func (r *SubmitTicketRequest) ToCommand(tenantID uint) usecases.SubmitTicketCommand {
	return usecases.SubmitTicketCommand{
		TenantID:          tenantID,
		Type:              r.Type,
		Description:       r.Description,
		Urgency:           r.Urgency,
		ReporterName:      r.ReporterName,
		ReporterEmail:     r.ReporterEmail,
		ReporterPhone:     r.ReporterPhone,
		PropertyID:        r.PropertyID,
		UnitLabel:         r.UnitLabel,
		PermissionToEnter: r.PermissionToEnter,
	}
}

type AddMessageRequest struct {
	AuthorName string `json:"author_name" binding:"max=200"`
	Body       string `json:"body" binding:"required,max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SendContractorEmailRequest struct {
	// ContractorID selects a candidate from the latest triage result; empty
	// dispatches to the top-ranked one.
	ContractorID string `json:"contractor_id"`
}

type ListTicketsRequest struct {
	Page     int
	PageSize int
	Status   string
	Urgency  string
	Category string
	Type     string
}

func parseListTicketsRequest(c *gin.Context) ListTicketsRequest {
	page, pageSize := utils.ParsePagination(c)
	return ListTicketsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Urgency:  c.Query("urgency"),
		Category: c.Query("category"),
		Type:     c.Query("type"),
	}
}

func (r ListTicketsRequest) ToQuery(tenantID uint) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		TenantID: tenantID,
		Status:   r.Status,
		Urgency:  r.Urgency,
		Category: r.Category,
		Type:     r.Type,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}
