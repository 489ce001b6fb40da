package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdesk/internal/application/ticket/usecases"
	"propdesk/internal/domain/ticket"
	"propdesk/internal/interfaces/http/middleware"
	"propdesk/internal/shared/logger"
	"propdesk/internal/shared/utils"
)

// PublicHandler serves the reporter-facing endpoints. No authentication, no
// numeric ids; everything after submission is keyed by the reference code.
type PublicHandler struct {
	submitTicketUC usecases.SubmitTicketExecutor
	getByRefUC     usecases.GetTicketByReferenceExecutor
	addMessageUC   usecases.AddMessageExecutor
	logger         logger.Interface
}

func NewPublicHandler(
	submitTicketUC usecases.SubmitTicketExecutor,
	getByRefUC usecases.GetTicketByReferenceExecutor,
	addMessageUC usecases.AddMessageExecutor,
	log logger.Interface,
) *PublicHandler {
	return &PublicHandler{
		submitTicketUC: submitTicketUC,
		getByRefUC:     getByRefUC,
		addMessageUC:   addMessageUC,
		logger:         log,
	}
}

// SubmitTicket handles POST /public/tickets
func (h *PublicHandler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for ticket submission", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(middleware.TenantID(c))

	result, err := h.submitTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"reference": result.Reference,
		"status":    result.Status,
	}, "Ticket submitted successfully")
}

// GetTicket handles GET /public/tickets/:reference
func (h *PublicHandler) GetTicket(c *gin.Context) {
	reference, err := utils.ParseReferenceParam(c, "reference")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketByReferenceQuery{
		TenantID:  middleware.TenantID(c),
		Reference: reference,
	}

	result, err := h.getByRefUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddMessage handles POST /public/tickets/:reference/messages
func (h *PublicHandler) AddMessage(c *gin.Context) {
	reference, err := utils.ParseReferenceParam(c, "reference")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddMessageCommand{
		TenantID:   middleware.TenantID(c),
		Reference:  reference,
		AuthorKind: string(ticket.AuthorReporter),
		AuthorName: req.AuthorName,
		Body:       req.Body,
	}

	result, err := h.addMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message added")
}
