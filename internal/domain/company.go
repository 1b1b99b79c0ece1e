package domain

import (
	"context"
	"time"
)

// Company is a directory entry. It is not linked to a recruiter account.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" binding:"required" validate:"required,max=200"`
	Logo        string    `json:"logo,omitempty"`
	Description string    `json:"description,omitempty" validate:"max=5000"`
	Industry    string    `json:"industry" binding:"required" validate:"required"`
	Location    string    `json:"location" binding:"required" validate:"required"`
	Website     string    `json:"website,omitempty" validate:"omitempty,url"`
	Size        string    `json:"size,omitempty"`
	Founded     *int      `json:"founded,omitempty" validate:"omitempty,min=1800,max=2100"`
	Specialties []string  `json:"specialties"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CompanyPatch carries a partial update; nil fields are left untouched.
type CompanyPatch struct {
	Name        *string  `json:"name"`
	Logo        *string  `json:"logo"`
	Description *string  `json:"description"`
	Industry    *string  `json:"industry"`
	Location    *string  `json:"location"`
	Website     *string  `json:"website"`
	Size        *string  `json:"size"`
	Founded     *int     `json:"founded"`
	Specialties []string `json:"specialties"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	// List returns every company ordered by name.
	List(ctx context.Context) ([]Company, error)
	// Update and Delete return NotFound when no company has the id.
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, company *Company) error
	GetCompany(ctx context.Context, id string) (*Company, error)
	ListCompanies(ctx context.Context) ([]Company, error)
	UpdateCompany(ctx context.Context, id string, patch *CompanyPatch) (*Company, error)
	DeleteCompany(ctx context.Context, id string) error
}
