package company

import (
	"errors"

	companyerrors "biztime/internal/company/errors"
	"biztime/internal/shared/database"

	"gorm.io/gorm"
)

const (
	constraintCompanyPK   = "companies_pkey"
	constraintCompanyName = "companies_name_key"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	if database.ViolationOf(err) == database.UniqueViolation {
		switch database.ConstraintOf(err) {
		case constraintCompanyPK:
			return companyerrors.ErrCompanyCodeExists
		case constraintCompanyName:
			return companyerrors.ErrCompanyNameExists
		}
	}

	return err
}
