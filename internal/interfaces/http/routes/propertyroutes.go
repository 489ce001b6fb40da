package routes

import (
	"github.com/gin-gonic/gin"

	propertyhandlers "propdesk/internal/interfaces/http/handlers/property"
	"propdesk/internal/interfaces/http/middleware"
)

type PropertyRouteConfig struct {
	PropertyHandler  *propertyhandlers.PropertyHandler
	TenantMiddleware *middleware.TenantMiddleware
}

func SetupPropertyRoutes(engine *gin.Engine, config *PropertyRouteConfig) {
	properties := engine.Group("/properties")
	properties.Use(config.TenantMiddleware.Resolve())
	{
		properties.POST("", config.PropertyHandler.Create)
		properties.GET("", config.PropertyHandler.List)
		properties.GET("/:id", config.PropertyHandler.Get)
		properties.PUT("/:id", config.PropertyHandler.Update)
		properties.DELETE("/:id", config.PropertyHandler.Delete)
	}
}
