package company

import (
	"net/http"

	"biztime/internal/shared/apperror"
	"biztime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	companies, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, "failed to list companies")
		return
	}
	response.Success(c, http.StatusOK, "companies", companies)
}

func (h *Handler) GetByCode(c *gin.Context) {
	comp, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeServiceError(c, err, "failed to get company")
		return
	}
	response.Success(c, http.StatusOK, "company", comp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	comp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to create company")
		return
	}
	response.Success(c, http.StatusCreated, "company", comp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	comp, err := h.service.Update(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to update company")
		return
	}
	response.Success(c, http.StatusOK, "company", comp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		h.writeServiceError(c, err, "failed to delete company")
		return
	}
	response.Deletion(c, http.StatusOK)
}

// writeServiceError hands err to the error middleware, which owns the
// response body and the request log line.
func (h *Handler) writeServiceError(c *gin.Context, err error, msg string) {
	h.logger.Debug(msg,
		zap.String("code", c.Param("code")),
		zap.Error(err),
	)
	_ = c.Error(err)
}
