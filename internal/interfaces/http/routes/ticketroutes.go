package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "propdesk/internal/interfaces/http/handlers/ticket"
	"propdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler    *tickethandlers.TicketHandler
	TenantMiddleware *middleware.TenantMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.TenantMiddleware.Resolve())
	{
		// Collection operations (no ID parameter)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.PATCH("/:id/status", config.TicketHandler.UpdateStatus)
		tickets.POST("/:id/reprocess", config.TicketHandler.Reprocess)
		tickets.POST("/:id/send-email", config.TicketHandler.SendContractorEmail)
		tickets.GET("/:id/triage", config.TicketHandler.GetTriageHistory)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
