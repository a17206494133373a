package middleware

import (
	"net/http"

	"biztime/internal/shared/apperror"
	"biztime/internal/shared/contextutil"
	"biztime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is the only place error bodies are written. Handlers and
// middleware attach failures with c.Error; once the chain returns, the last
// one is rendered as {"error":{"message","status"}}.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		httpErr := apperror.ToHTTP(err)

		l := contextutil.GetLogger(c.Request.Context(), logger)
		if httpErr.Status >= http.StatusInternalServerError {
			l.Error("request failed", zap.Int("status", httpErr.Status), zap.Error(err))
		} else {
			l.Warn("request rejected", zap.Int("status", httpErr.Status), zap.String("code", httpErr.Code), zap.Error(err))
		}

		if c.Writer.Written() {
			return
		}
		response.Error(c, httpErr)
	}
}

// NotFound answers unmatched routes and methods.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperror.ErrRouteNotFound)
	}
}
