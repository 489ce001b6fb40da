package property

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdesk/internal/application/property/usecases"
	"propdesk/internal/interfaces/http/middleware"
	"propdesk/internal/shared/logger"
	"propdesk/internal/shared/utils"
)

type PropertyHandler struct {
	createUC usecases.CreatePropertyExecutor
	updateUC usecases.UpdatePropertyExecutor
	deleteUC usecases.DeletePropertyExecutor
	getUC    usecases.GetPropertyExecutor
	listUC   usecases.ListPropertiesExecutor
	logger   logger.Interface
}

func NewPropertyHandler(
	createUC usecases.CreatePropertyExecutor,
	updateUC usecases.UpdatePropertyExecutor,
	deleteUC usecases.DeletePropertyExecutor,
	getUC usecases.GetPropertyExecutor,
	listUC usecases.ListPropertiesExecutor,
	log logger.Interface,
) *PropertyHandler {
	return &PropertyHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   log,
	}
}

// Create handles POST /properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create property", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(middleware.TenantID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Property created successfully")
}

// Update handles PUT /properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	propertyID, err := utils.ParseUintParam(c, "id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(middleware.TenantID(c), propertyID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Property updated", result)
}

// Delete handles DELETE /properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	propertyID, err := utils.ParseUintParam(c, "id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeletePropertyCommand{
		TenantID:   middleware.TenantID(c),
		PropertyID: propertyID,
	}

	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Get handles GET /properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	propertyID, err := utils.ParseUintParam(c, "id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetPropertyQuery{
		TenantID:   middleware.TenantID(c),
		PropertyID: propertyID,
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /properties
func (h *PropertyHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListPropertiesQuery{
		TenantID: middleware.TenantID(c),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Properties, result.Total, result.Page, result.PageSize)
}
