package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Violation classifies a statement the store rejected.
type Violation int

const (
	Other Violation = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
	NotNullViolation
)

func (v Violation) String() string {
	switch v {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case CheckViolation:
		return "check_violation"
	case NotNullViolation:
		return "not_null_violation"
	default:
		return "other"
	}
}

// SQLSTATE class 23 codes.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

func violationFromCode(code string) Violation {
	switch code {
	case codeUniqueViolation:
		return UniqueViolation
	case codeForeignKeyViolation:
		return ForeignKeyViolation
	case codeCheckViolation:
		return CheckViolation
	case codeNotNullViolation:
		return NotNullViolation
	default:
		return Other
	}
}

// Error is a statement rejected by the store, decoded from the driver's
// structured error.
type Error struct {
	Violation  Violation
	Code       string
	Constraint string
	Table      string
	Column     string
	Message    string
	err        error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	return &Error{
		Violation:  violationFromCode(pgErr.Code),
		Code:       pgErr.Code,
		Constraint: pgErr.ConstraintName,
		Table:      pgErr.TableName,
		Column:     pgErr.ColumnName,
		Message:    pgErr.Message,
		err:        err,
	}
}

// ViolationOf reports the violation kind carried by err, or Other.
func ViolationOf(err error) Violation {
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr.Violation
	}
	return Other
}

// ConstraintOf reports the violated constraint name, if any.
func ConstraintOf(err error) string {
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr.Constraint
	}
	return ""
}
