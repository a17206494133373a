package invoiceerrors

import (
	"net/http"

	"biztime/internal/shared/apperror"
)

var (
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invoice not found",
		http.StatusNotFound,
	)

	ErrInvalidInvoiceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid invoice id",
		http.StatusBadRequest,
	)

	ErrCompanyCodeNotExist = apperror.New(
		apperror.CodeInvalidInput,
		"Company code does not exist",
		http.StatusBadRequest,
	)

	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Invoice amount must not be negative",
		http.StatusBadRequest,
	)
)
