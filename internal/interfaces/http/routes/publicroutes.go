package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "propdesk/internal/interfaces/http/handlers/ticket"
	"propdesk/internal/interfaces/http/middleware"
)

type PublicRouteConfig struct {
	PublicHandler    *tickethandlers.PublicHandler
	TenantMiddleware *middleware.TenantMiddleware
}

// SetupPublicRoutes registers the reporter-facing endpoints. Tenant resolution
// is the only gate; there is no authentication on this surface.
func SetupPublicRoutes(engine *gin.Engine, config *PublicRouteConfig) {
	public := engine.Group("/public")
	public.Use(config.TenantMiddleware.Resolve())
	{
		public.POST("/tickets", config.PublicHandler.SubmitTicket)
		public.GET("/tickets/:reference", config.PublicHandler.GetTicket)
		public.POST("/tickets/:reference/messages", config.PublicHandler.AddMessage)
	}
}
