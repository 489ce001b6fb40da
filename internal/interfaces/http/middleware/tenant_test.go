package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/internal/domain/tenant"
	"propdesk/internal/shared/logger"
)

type mockTenantRepository struct {
	tenant.Repository
	getBySlugFunc func(ctx context.Context, slug string) (*tenant.Tenant, error)
}

func (m *mockTenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	return m.getBySlugFunc(ctx, slug)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any)                {}
func (noopLogger) Info(string, ...any)                 {}
func (noopLogger) Warn(string, ...any)                 {}
func (noopLogger) Error(string, ...any)                {}
func (noopLogger) With(...any) logger.Interface        { return noopLogger{} }
func (noopLogger) Named(string) logger.Interface       { return noopLogger{} }
func (noopLogger) Debugw(string, ...interface{})       {}
func (noopLogger) Infow(string, ...interface{})        {}
func (noopLogger) Warnw(string, ...interface{})        {}
func (noopLogger) Errorw(string, ...interface{})       {}
func (noopLogger) Fatalw(string, ...interface{})       {}

func knownTenant(t *testing.T) *tenant.Tenant {
	now := time.Now()
	tn, err := tenant.ReconstructTenant(7, "Acme Property Group", "acme", now, now)
	require.NoError(t, err)
	return tn
}

func performRequest(m *TenantMiddleware, host, headerSlug string) (*httptest.ResponseRecorder, uint) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	var resolvedID uint
	engine.GET("/probe", m.Resolve(), func(c *gin.Context) {
		resolvedID = TenantID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Host = host
	if headerSlug != "" {
		req.Header.Set("X-Tenant", headerSlug)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w, resolvedID
}

func TestTenantMiddleware_ResolvesFromHeader(t *testing.T) {
	repo := &mockTenantRepository{
		getBySlugFunc: func(ctx context.Context, slug string) (*tenant.Tenant, error) {
			assert.Equal(t, "acme", slug)
			return knownTenant(t), nil
		},
	}
	m := NewTenantMiddleware(repo, noopLogger{})

	w, resolvedID := performRequest(m, "localhost:8080", "Acme")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 7, resolvedID)
}

func TestTenantMiddleware_ResolvesFromSubdomain(t *testing.T) {
	repo := &mockTenantRepository{
		getBySlugFunc: func(ctx context.Context, slug string) (*tenant.Tenant, error) {
			assert.Equal(t, "acme", slug)
			return knownTenant(t), nil
		},
	}
	m := NewTenantMiddleware(repo, noopLogger{})

	w, resolvedID := performRequest(m, "acme.propdesk.example:443", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 7, resolvedID)
}

func TestTenantMiddleware_NoSlug(t *testing.T) {
	repo := &mockTenantRepository{
		getBySlugFunc: func(ctx context.Context, slug string) (*tenant.Tenant, error) {
			t.Fatal("repository should not be queried without a slug")
			return nil, nil
		},
	}
	m := NewTenantMiddleware(repo, noopLogger{})

	w, _ := performRequest(m, "localhost:8080", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantMiddleware_UnknownTenant(t *testing.T) {
	repo := &mockTenantRepository{
		getBySlugFunc: func(ctx context.Context, slug string) (*tenant.Tenant, error) {
			return nil, nil
		},
	}
	m := NewTenantMiddleware(repo, noopLogger{})

	w, _ := performRequest(m, "localhost:8080", "ghost")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTenantMiddleware_RepositoryError(t *testing.T) {
	repo := &mockTenantRepository{
		getBySlugFunc: func(ctx context.Context, slug string) (*tenant.Tenant, error) {
			return nil, errors.New("connection refused")
		},
	}
	m := NewTenantMiddleware(repo, noopLogger{})

	w, _ := performRequest(m, "localhost:8080", "acme")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
