package invoice

import (
	"errors"

	invoiceerrors "biztime/internal/invoice/errors"
	"biztime/internal/shared/database"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoiceerrors.ErrInvoiceNotFound
	}

	switch database.ViolationOf(err) {
	case database.ForeignKeyViolation:
		return invoiceerrors.ErrCompanyCodeNotExist
	case database.CheckViolation:
		return invoiceerrors.ErrNegativeAmount
	}

	return err
}
