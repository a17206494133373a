package company

import (
	"context"

	"biztime/internal/shared/database"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Company, error)
	FindByCode(ctx context.Context, code string) (*Company, error)
	Exists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, code string) error
}

type repository struct {
	db database.Executor
}

func NewRepository(db database.Executor) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	companies := []Company{}
	_, err := r.db.Query(ctx, &companies,
		`SELECT code, name, description FROM companies ORDER BY code`)
	return companies, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Company, error) {
	var c Company
	n, err := r.db.Query(ctx, &c,
		`SELECT code, name, description FROM companies WHERE code = ?`, code)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *repository) Exists(ctx context.Context, code string) (bool, error) {
	var found []string
	n, err := r.db.Query(ctx, &found,
		`SELECT code FROM companies WHERE code = ?`, code)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) Create(ctx context.Context, c *Company) error {
	_, err := r.db.Query(ctx, c,
		`INSERT INTO companies (code, name, description)
		VALUES (?, ?, ?)
		RETURNING code, name, description`,
		c.Code, c.Name, c.Description)
	return err
}

func (r *repository) Update(ctx context.Context, c *Company) error {
	n, err := r.db.Query(ctx, c,
		`UPDATE companies
		SET name = ?, description = ?
		WHERE code = ?
		RETURNING code, name, description`,
		c.Name, c.Description, c.Code)
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, code string) error {
	n, err := r.db.Exec(ctx, `DELETE FROM companies WHERE code = ?`, code)
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
