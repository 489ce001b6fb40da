package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"propdesk/internal/domain/tenant"
	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/logger"
	"propdesk/internal/shared/utils"
)

const (
	// TenantIDKey is the gin context key holding the resolved tenant id.
	TenantIDKey = "tenant_id"
	// TenantSlugKey is the gin context key holding the resolved tenant slug.
	TenantSlugKey = "tenant_slug"

	tenantHeader = "X-Tenant"
)

// TenantMiddleware resolves the tenant for every request. The slug comes from
// the X-Tenant header, or failing that from the first label of the Host
// ("acme.propdesk.example" resolves "acme"). Unknown tenants get 404 so the
// namespace cannot be probed apart from missing ones.
type TenantMiddleware struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewTenantMiddleware(tenantRepo tenant.Repository, log logger.Interface) *TenantMiddleware {
	return &TenantMiddleware{
		tenantRepo: tenantRepo,
		logger:     log,
	}
}

func (m *TenantMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := extractTenantSlug(c)
		if slug == "" {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("tenant could not be determined from request"))
			c.Abort()
			return
		}

		t, err := m.tenantRepo.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			m.logger.Errorw("failed to resolve tenant", "slug", slug, "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to resolve tenant"))
			c.Abort()
			return
		}
		if t == nil {
			utils.ErrorResponseWithError(c, errors.NewNotFoundError("tenant not found"))
			c.Abort()
			return
		}

		c.Set(TenantIDKey, t.ID())
		c.Set(TenantSlugKey, t.Slug())
		c.Next()
	}
}

// extractTenantSlug prefers the X-Tenant header over the subdomain so local
// and proxy setups without wildcard DNS still work.
func extractTenantSlug(c *gin.Context) string {
	if slug := strings.TrimSpace(c.GetHeader(tenantHeader)); slug != "" {
		return strings.ToLower(slug)
	}

	host := c.Request.Host
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}

	labels := strings.Split(host, ".")
	// A bare host ("localhost", an IP) has no subdomain to use.
	if len(labels) < 3 {
		return ""
	}
	return strings.ToLower(labels[0])
}

// TenantID returns the tenant id the middleware stored on the context.
func TenantID(c *gin.Context) uint {
	if v, exists := c.Get(TenantIDKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
