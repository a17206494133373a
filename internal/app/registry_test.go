package app_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"biztime/internal/app"
	"biztime/internal/company"
	"biztime/internal/config"
	"biztime/internal/health"
	"biztime/internal/invoice"
	"biztime/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type noCompanies struct{}

func (noCompanies) Exists(context.Context, string) (bool, error) { return false, nil }

func testHandlers(ping error) app.Handlers {
	return app.Handlers{
		Health:         health.NewHandler(pingFunc(func(context.Context) error { return ping }), zap.NewNop()),
		Company:        company.NewHandler(nil, zap.NewNop()),
		Invoice:        invoice.NewHandler(nil, zap.NewNop()),
		RequireCompany: middleware.RequireCompany(noCompanies{}),
	}
}

func TestRoutes(t *testing.T) {
	var got []string
	for _, rt := range app.Routes(testHandlers(nil)) {
		got = append(got, rt.Method+" "+rt.Path)
		assert.NotEmpty(t, rt.Handlers, rt.Path)
	}

	assert.Equal(t, []string{
		"GET /health",
		"GET /companies",
		"POST /companies",
		"GET /companies/:code",
		"PATCH /companies/:code",
		"DELETE /companies/:code",
		"GET /invoices",
		"POST /invoices",
		"GET /invoices/:id",
		"PATCH /invoices/:id",
		"DELETE /invoices/:id",
	}, got)
}

func TestRoutes_CompanyCodeRoutesAreGuarded(t *testing.T) {
	for _, rt := range app.Routes(testHandlers(nil)) {
		if rt.Path == "/companies/:code" {
			assert.Len(t, rt.Handlers, 2, rt.Method)
		}
	}
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := app.NewRouter(config.HTTPConfig{}, zap.NewNop(), app.Routes(testHandlers(nil)))

	serve := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	t.Run("unmatched route", func(t *testing.T) {
		w := serve(http.MethodGet, "/nope")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Not Found","status":404}}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("unmatched method", func(t *testing.T) {
		w := serve(http.MethodPut, "/invoices")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Not Found","status":404}}`, w.Body.String())
	})

	t.Run("company check runs before the handler", func(t *testing.T) {
		w := serve(http.MethodGet, "/companies/nope")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Company not found","status":404}}`, w.Body.String())
	})

	t.Run("invalid invoice id", func(t *testing.T) {
		w := serve(http.MethodDelete, "/invoices/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("health", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/health").Code)
	})
}

func TestNewRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.HTTPConfig{RateLimitEnabled: true, RateLimitRPS: 0.001, RateLimitBurst: 1}
	r := app.NewRouter(cfg, zap.NewNop(), app.Routes(testHandlers(errors.New("down"))))

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
