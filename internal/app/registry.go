package app

import (
	"biztime/internal/company"
	"biztime/internal/config"
	"biztime/internal/health"
	"biztime/internal/invoice"
	"biztime/internal/middleware"
	"biztime/internal/shared/route"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Handlers is everything the route table points at.
type Handlers struct {
	Health         *health.Handler
	Company        *company.Handler
	Invoice        *invoice.Handler
	RequireCompany gin.HandlerFunc
}

// Routes is the complete (method, path) table of the API.
func Routes(h Handlers) []route.Route {
	var routes []route.Route
	routes = append(routes, health.Routes(h.Health)...)
	routes = append(routes, company.Routes(h.Company, h.RequireCompany)...)
	routes = append(routes, invoice.Routes(h.Invoice)...)
	return routes
}

// NewRouter builds the engine: global middleware first, then the table.
// Unmatched paths and methods answer 404 through the error handler.
func NewRouter(cfg config.HTTPConfig, logger *zap.Logger, routes []route.Route) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger),
		middleware.ErrorHandler(logger),
		middleware.Recovery(logger),
	)
	if cfg.RateLimitEnabled {
		r.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}

	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.NotFound())

	route.Register(r, routes)
	return r
}
