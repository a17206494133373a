package invoice

import (
	"context"

	"biztime/internal/shared/database"

	"gorm.io/gorm"
)

const returningColumns = `id, comp_code, amt, paid, add_date, paid_date`

//go:generate mockgen -source=invoice_repo.go -destination=mock/invoice_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Invoice, error)
	FindByID(ctx context.Context, id int64) (*Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
	UpdateAmount(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db database.Executor
}

func NewRepository(db database.Executor) Repository {
	return &repository{db: db}
}

// FindAll fills only ID and CompCode.
func (r *repository) FindAll(ctx context.Context) ([]Invoice, error) {
	invoices := []Invoice{}
	_, err := r.db.Query(ctx, &invoices,
		`SELECT id, comp_code FROM invoices ORDER BY id`)
	return invoices, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Invoice, error) {
	var inv Invoice
	n, err := r.db.Query(ctx, &inv,
		`SELECT `+returningColumns+` FROM invoices WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &inv, nil
}

// Create leaves paid and add_date to their column defaults.
func (r *repository) Create(ctx context.Context, inv *Invoice) error {
	_, err := r.db.Query(ctx, inv,
		`INSERT INTO invoices (comp_code, amt)
		VALUES (?, ?)
		RETURNING `+returningColumns,
		inv.CompCode, inv.Amt)
	return err
}

func (r *repository) UpdateAmount(ctx context.Context, inv *Invoice) error {
	n, err := r.db.Query(ctx, inv,
		`UPDATE invoices
		SET amt = ?
		WHERE id = ?
		RETURNING `+returningColumns,
		inv.Amt, inv.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	n, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
