package companyerrors

import (
	"net/http"

	"biztime/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrCompanyCodeExists = apperror.New(
		apperror.CodeConflict,
		"Company code already exists",
		http.StatusBadRequest,
	)

	ErrCompanyNameExists = apperror.New(
		apperror.CodeConflict,
		"Company name already exists",
		http.StatusBadRequest,
	)
)
