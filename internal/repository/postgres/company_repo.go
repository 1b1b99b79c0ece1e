package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const companyColumns = `id, name, logo, description, industry, location, website, size, founded, specialties, created_at, updated_at`

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func scanCompany(row pgx.Row, c *domain.Company) error {
	var specialties []string
	err := row.Scan(
		&c.ID, &c.Name, &c.Logo, &c.Description, &c.Industry, &c.Location, &c.Website, &c.Size,
		&c.Founded, pq.Array(&specialties), &c.CreatedAt, &c.UpdatedAt,
	)
	if specialties == nil {
		specialties = []string{}
	}
	c.Specialties = specialties
	return err
}

func (r *companyRepo) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO companies (` + companyColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Logo, c.Description, c.Industry, c.Location, c.Website, c.Size,
		c.Founded, pq.Array(c.Specialties), c.CreatedAt, c.UpdatedAt,
	)
	return mapError(err)
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	var c domain.Company
	err := scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *companyRepo) List(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name ASC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		var c domain.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, mapError(err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return companies, nil
}

func (r *companyRepo) Update(ctx context.Context, c *domain.Company) error {
	query := `UPDATE companies
              SET name = $2, logo = $3, description = $4, industry = $5, location = $6,
                  website = $7, size = $8, founded = $9, specialties = $10, updated_at = $11
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Logo, c.Description, c.Industry, c.Location, c.Website, c.Size,
		c.Founded, pq.Array(c.Specialties), c.UpdatedAt,
	)
	if err != nil {
		if isInvalidText(err) {
			return apperror.NotFound("Company not found")
		}
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Company not found")
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return apperror.NotFound("Company not found")
		}
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Company not found")
	}
	return nil
}
