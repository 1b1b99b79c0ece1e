package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type companyUsecase struct {
	repo     domain.CompanyRepository
	validate *validator.Validate
}

func NewCompanyUsecase(repo domain.CompanyRepository, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{repo: repo, validate: validate}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, c *domain.Company) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Industry = strings.TrimSpace(c.Industry)
	c.Location = strings.TrimSpace(c.Location)
	if err := u.validate.Struct(c); err != nil {
		return apperror.Validation(validation.Message(err))
	}

	now := time.Now()
	c.ID = uuid.NewString()
	c.Specialties = domain.NormalizeSkills(c.Specialties)
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *companyUsecase) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return u.repo.List(ctx)
}

// UpdateCompany applies patch and re-validates the result. Specialties are
// replaced as a whole when present.
func (u *companyUsecase) UpdateCompany(ctx context.Context, id string, patch *domain.CompanyPatch) (*domain.Company, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch != nil {
		applyCompanyPatch(c, patch)
	}
	if err := u.validate.Struct(c); err != nil {
		return nil, apperror.Validation(validation.Message(err))
	}

	c.UpdatedAt = time.Now()
	if err := u.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func applyCompanyPatch(c *domain.Company, p *domain.CompanyPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&c.Name, p.Name)
	set(&c.Logo, p.Logo)
	set(&c.Description, p.Description)
	set(&c.Industry, p.Industry)
	set(&c.Location, p.Location)
	set(&c.Website, p.Website)
	set(&c.Size, p.Size)
	if p.Founded != nil {
		founded := *p.Founded
		c.Founded = &founded
	}
	if p.Specialties != nil {
		c.Specialties = domain.NormalizeSkills(p.Specialties)
	}
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
