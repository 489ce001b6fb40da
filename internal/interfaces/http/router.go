package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdesk/internal/interfaces/http/middleware"
	"propdesk/internal/interfaces/http/routes"
)

// buildEngine assembles the gin engine: global middleware, health endpoint,
// and the public and staff route groups.
func (c *Container) buildEngine() *gin.Engine {
	if c.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.ErrorHandler())
	if len(c.cfg.Server.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	}

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupPublicRoutes(engine, &routes.PublicRouteConfig{
		PublicHandler:    c.publicHandler,
		TenantMiddleware: c.tenantMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:    c.ticketHandler,
		TenantMiddleware: c.tenantMiddleware,
	})
	routes.SetupContractorRoutes(engine, &routes.ContractorRouteConfig{
		ContractorHandler: c.contractorHandler,
		TenantMiddleware:  c.tenantMiddleware,
	})
	routes.SetupPropertyRoutes(engine, &routes.PropertyRouteConfig{
		PropertyHandler:  c.propertyHandler,
		TenantMiddleware: c.tenantMiddleware,
	})

	return engine
}
