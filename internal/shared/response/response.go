package response

import (
	"biztime/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type ErrorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

// StatusMessage is the body returned by delete endpoints.
type StatusMessage struct {
	Status string `json:"status"`
}

const Deleted = "Deleted."

// Success writes data under a single top-level key, e.g. {"company": {...}}.
func Success(c *gin.Context, status int, key string, data any) {
	c.JSON(status, gin.H{key: data})
}

func Deletion(c *gin.Context, status int) {
	c.JSON(status, StatusMessage{Status: Deleted})
}

func Error(c *gin.Context, httpErr apperror.HTTPError) {
	c.JSON(httpErr.Status, ErrorEnvelope{
		Error: ErrorDetail{
			Message: httpErr.Message,
			Status:  httpErr.Status,
		},
	})
}
