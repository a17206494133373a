package company

import (
	"context"
)

type Service interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	GetByCode(ctx context.Context, code string) (CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, code string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, code string) error
	Exists(ctx context.Context, code string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		res = append(res, ToResponse(&companies[i]))
	}
	return res, nil
}

func (s *service) GetByCode(ctx context.Context, code string) (CompanyResponse, error) {
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return ToResponse(c), nil
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	c := &Company{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return ToResponse(c), nil
}

func (s *service) Update(ctx context.Context, code string, req UpdateCompanyRequest) (CompanyResponse, error) {
	c := &Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return ToResponse(c), nil
}

func (s *service) Delete(ctx context.Context, code string) error {
	return mapRepositoryError(s.repo.Delete(ctx, code))
}

// Exists backs the company-code check that guards /companies/:code routes.
func (s *service) Exists(ctx context.Context, code string) (bool, error) {
	return s.repo.Exists(ctx, code)
}
