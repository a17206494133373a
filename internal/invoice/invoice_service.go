package invoice

import (
	"context"
	"errors"

	"biztime/internal/company"
	invoiceerrors "biztime/internal/invoice/errors"
	"biztime/internal/shared/contextutil"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context) ([]InvoiceListItem, error)
	GetByID(ctx context.Context, id int64) (InvoiceDetailResponse, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, id int64) error
}

// CompanyFinder is the company read the invoice detail composes with.
type CompanyFinder interface {
	FindByCode(ctx context.Context, code string) (*company.Company, error)
}

type service struct {
	repo      Repository
	companies CompanyFinder
}

func NewService(repo Repository, companies CompanyFinder) Service {
	return &service{repo: repo, companies: companies}
}

func (s *service) List(ctx context.Context) ([]InvoiceListItem, error) {
	invoices, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]InvoiceListItem, 0, len(invoices))
	for _, inv := range invoices {
		res = append(res, InvoiceListItem{ID: inv.ID, CompCode: inv.CompCode})
	}
	return res, nil
}

// GetByID reads the invoice and then its company. The two reads are not
// atomic: a company deleted in between yields a detail with a null company.
func (s *service) GetByID(ctx context.Context, id int64) (InvoiceDetailResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return InvoiceDetailResponse{}, mapRepositoryError(err)
	}

	comp, err := s.companies.FindByCode(ctx, inv.CompCode)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceDetailResponse{}, err
		}
		contextutil.GetLogger(ctx, zap.L()).Warn("invoice references missing company",
			zap.Int64("invoice_id", inv.ID),
			zap.String("comp_code", inv.CompCode),
		)
		comp = nil
	}

	return toDetailResponse(inv, comp), nil
}

func (s *service) Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error) {
	amt, err := checkAmount(req.Amt)
	if err != nil {
		return InvoiceResponse{}, err
	}

	inv := &Invoice{CompCode: req.CompCode, Amt: amt}
	if err := s.repo.Create(ctx, inv); err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}
	return toResponse(inv), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (InvoiceResponse, error) {
	amt, err := checkAmount(req.Amt)
	if err != nil {
		return InvoiceResponse{}, err
	}

	inv := &Invoice{ID: id, Amt: amt}
	if err := s.repo.UpdateAmount(ctx, inv); err != nil {
		return InvoiceResponse{}, mapRepositoryError(err)
	}
	return toResponse(inv), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func checkAmount(amt *decimal.Decimal) (decimal.Decimal, error) {
	if amt == nil || amt.IsNegative() {
		return decimal.Decimal{}, invoiceerrors.ErrNegativeAmount
	}
	return *amt, nil
}
