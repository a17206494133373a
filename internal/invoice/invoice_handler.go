package invoice

import (
	"net/http"
	"strconv"

	invoiceerrors "biztime/internal/invoice/errors"
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
	l := zap.L().Named("invoice.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invoice.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, "failed to list invoices")
		return
	}
	response.Success(c, http.StatusOK, "invoices", invoices)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	inv, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err, "failed to get invoice")
		return
	}
	response.Success(c, http.StatusOK, "invoice", inv)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	inv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to create invoice")
		return
	}
	response.Success(c, http.StatusCreated, "invoice", inv)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.MapValidationError(err))
		return
	}

	inv, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err, "failed to update invoice")
		return
	}
	response.Success(c, http.StatusOK, "invoice", inv)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err, "failed to delete invoice")
		return
	}
	response.Deletion(c, http.StatusOK)
}

// invoiceID parses :id as a positive integer.
func (h *Handler) invoiceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(invoiceerrors.ErrInvalidInvoiceID)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(c *gin.Context, err error, msg string) {
	h.logger.Debug(msg,
		zap.String("id", c.Param("id")),
		zap.Error(err),
	)
	_ = c.Error(err)
}
