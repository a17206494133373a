package invoice

import (
	"time"

	"biztime/internal/company"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" binding:"required"`
	Amt      *decimal.Decimal `json:"amt" binding:"required"`
}

type UpdateInvoiceRequest struct {
	Amt *decimal.Decimal `json:"amt" binding:"required"`
}

type InvoiceListItem struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceResponse is the row returned by create and update.
type InvoiceResponse struct {
	ID       int64   `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      string  `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

// InvoiceDetailResponse nests the owning company in place of comp_code.
// Company is null when the company vanished between the two reads.
type InvoiceDetailResponse struct {
	ID       int64                    `json:"id"`
	Amt      string                   `json:"amt"`
	Paid     bool                     `json:"paid"`
	AddDate  string                   `json:"add_date"`
	PaidDate *string                  `json:"paid_date"`
	Company  *company.CompanyResponse `json:"company"`
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toResponse(inv *Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      formatAmount(inv.Amt),
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: formatDate(inv.PaidDate),
	}
}

func toDetailResponse(inv *Invoice, comp *company.Company) InvoiceDetailResponse {
	res := InvoiceDetailResponse{
		ID:       inv.ID,
		Amt:      formatAmount(inv.Amt),
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: formatDate(inv.PaidDate),
	}
	if comp != nil {
		c := company.ToResponse(comp)
		res.Company = &c
	}
	return res
}
