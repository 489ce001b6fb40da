package routes

import (
	"github.com/gin-gonic/gin"

	contractorhandlers "propdesk/internal/interfaces/http/handlers/contractor"
	"propdesk/internal/interfaces/http/middleware"
)

type ContractorRouteConfig struct {
	ContractorHandler *contractorhandlers.ContractorHandler
	TenantMiddleware  *middleware.TenantMiddleware
}

func SetupContractorRoutes(engine *gin.Engine, config *ContractorRouteConfig) {
	contractors := engine.Group("/contractors")
	contractors.Use(config.TenantMiddleware.Resolve())
	{
		contractors.POST("", config.ContractorHandler.Create)
		contractors.GET("", config.ContractorHandler.List)
		contractors.GET("/:id", config.ContractorHandler.Get)
		contractors.PUT("/:id", config.ContractorHandler.Update)
		contractors.DELETE("/:id", config.ContractorHandler.Delete)
	}
}
