package middleware

import (
	"fmt"

	"biztime/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery converts a panic into a 500 rendered by ErrorHandler, so it must
// be installed after it.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", c.GetString(ctxKeyRequestID)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.Stack("stacktrace"),
				)
				_ = c.Error(apperror.Wrap(fmt.Errorf("panic: %v", r),
					apperror.CodeInternalError, apperror.ErrInternal.Message, apperror.ErrInternal.HTTPStatus))
				c.Abort()
			}
		}()
		c.Next()
	}
}
