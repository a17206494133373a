package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}
