package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdesk/internal/application/ticket/usecases"
	"propdesk/internal/interfaces/http/middleware"
	"propdesk/internal/shared/logger"
	"propdesk/internal/shared/utils"
)

// TicketHandler serves the staff endpoints: listing, detail with triage data,
// status changes, reprocessing, and contractor dispatch.
type TicketHandler struct {
	listTicketsUC         usecases.ListTicketsExecutor
	getTicketUC           usecases.GetTicketExecutor
	updateStatusUC        usecases.UpdateTicketStatusExecutor
	reprocessUC           usecases.ReprocessTicketExecutor
	sendContractorEmailUC usecases.SendContractorEmailExecutor
	getTriageHistoryUC    usecases.GetTriageHistoryExecutor
	logger                logger.Interface
}

func NewTicketHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateStatusUC usecases.UpdateTicketStatusExecutor,
	reprocessUC usecases.ReprocessTicketExecutor,
	sendContractorEmailUC usecases.SendContractorEmailExecutor,
	getTriageHistoryUC usecases.GetTriageHistoryExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:         listTicketsUC,
		getTicketUC:           getTicketUC,
		updateStatusUC:        updateStatusUC,
		reprocessUC:           reprocessUC,
		sendContractorEmailUC: sendContractorEmailUC,
		getTriageHistoryUC:    getTriageHistoryUC,
		logger:                log,
	}
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)
	query := req.ToQuery(middleware.TenantID(c))

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TenantID: middleware.TenantID(c),
		TicketID: ticketID,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateTicketStatusCommand{
		TenantID:  middleware.TenantID(c),
		TicketID:  ticketID,
		NewStatus: req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// Reprocess handles POST /tickets/:id/reprocess
func (h *TicketHandler) Reprocess(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ReprocessTicketCommand{
		TenantID: middleware.TenantID(c),
		TicketID: ticketID,
	}

	result, err := h.reprocessUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "Ticket queued for reprocessing", result)
}

// SendContractorEmail handles POST /tickets/:id/send-email
func (h *TicketHandler) SendContractorEmail(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; an empty one dispatches to the top candidate.
	var req SendContractorEmailRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	cmd := usecases.SendContractorEmailCommand{
		TenantID:     middleware.TenantID(c),
		TicketID:     ticketID,
		ContractorID: req.ContractorID,
	}

	result, err := h.sendContractorEmailUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contractor email sent", result)
}

// GetTriageHistory handles GET /tickets/:id/triage
func (h *TicketHandler) GetTriageHistory(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTriageHistoryQuery{
		TenantID: middleware.TenantID(c),
		TicketID: ticketID,
	}

	result, err := h.getTriageHistoryUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
