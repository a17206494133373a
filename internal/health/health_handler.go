package health

import (
	"context"
	"net/http"
	"time"

	"biztime/internal/shared/contextutil"
	"biztime/internal/shared/route"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Check struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type Response struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
}

type Handler struct {
	db     Pinger
	logger *zap.Logger
}

func NewHandler(db Pinger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{db: db, logger: l}
}

// Check answers 200 when the database answers a ping, 503 otherwise.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	logger := contextutil.GetLogger(ctx, h.logger)

	res := Response{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Checks:    map[string]Check{},
	}

	start := time.Now()
	err := h.db.Ping(ctx)
	check := Check{Status: "healthy", ResponseTime: time.Since(start).String()}
	if err != nil {
		check.Status = "unhealthy"
		check.Error = err.Error()
		res.Status = "unhealthy"
		logger.Error("database health check failed", zap.Error(err))
	}
	res.Checks["database"] = check

	if res.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

func Routes(handler *Handler) []route.Route {
	return []route.Route{
		route.New(http.MethodGet, "/health", handler.Check),
	}
}
