package contractor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdesk/internal/application/contractor/usecases"
	"propdesk/internal/interfaces/http/middleware"
	"propdesk/internal/shared/logger"
	"propdesk/internal/shared/utils"
)

type ContractorHandler struct {
	createUC usecases.CreateContractorExecutor
	updateUC usecases.UpdateContractorExecutor
	deleteUC usecases.DeleteContractorExecutor
	getUC    usecases.GetContractorExecutor
	listUC   usecases.ListContractorsExecutor
	logger   logger.Interface
}

func NewContractorHandler(
	createUC usecases.CreateContractorExecutor,
	updateUC usecases.UpdateContractorExecutor,
	deleteUC usecases.DeleteContractorExecutor,
	getUC usecases.GetContractorExecutor,
	listUC usecases.ListContractorsExecutor,
	log logger.Interface,
) *ContractorHandler {
	return &ContractorHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   log,
	}
}

// Create handles POST /contractors
func (h *ContractorHandler) Create(c *gin.Context) {
	var req CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create contractor", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(middleware.TenantID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Contractor created successfully")
}

// Update handles PUT /contractors/:id
func (h *ContractorHandler) Update(c *gin.Context) {
	contractorID, err := utils.ParseUintParam(c, "id", "contractor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(middleware.TenantID(c), contractorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contractor updated", result)
}

// Delete handles DELETE /contractors/:id
func (h *ContractorHandler) Delete(c *gin.Context) {
	contractorID, err := utils.ParseUintParam(c, "id", "contractor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteContractorCommand{
		TenantID:     middleware.TenantID(c),
		ContractorID: contractorID,
	}

	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Get handles GET /contractors/:id
func (h *ContractorHandler) Get(c *gin.Context) {
	contractorID, err := utils.ParseUintParam(c, "id", "contractor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetContractorQuery{
		TenantID:     middleware.TenantID(c),
		ContractorID: contractorID,
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /contractors
func (h *ContractorHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListContractorsQuery{
		TenantID: middleware.TenantID(c),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Contractors, result.Total, result.Page, result.PageSize)
}
