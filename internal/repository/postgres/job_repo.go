package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const jobColumns = `id, title, company, company_logo, location, type, salary, salary_min, salary_max,
	description, requirements, benefits, tags, experience, education, application_deadline,
	status, posted_by, applicants, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row pgx.Row, job *domain.Job) error {
	var tags []string
	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.CompanyLogo, &job.Location, &job.Type, &job.Salary,
		&job.SalaryRange[0], &job.SalaryRange[1],
		&job.Description, &job.Requirements, &job.Benefits, pq.Array(&tags),
		&job.Experience, &job.Education, &job.ApplicationDeadline,
		&job.Status, &job.PostedBy, &job.Applicants, &job.CreatedAt, &job.UpdatedAt,
	)
	if tags == nil {
		tags = []string{}
	}
	job.Tags = tags
	return err
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (id, title, company, company_logo, location, type, salary, salary_min, salary_max,
                  description, requirements, benefits, tags, experience, education, application_deadline,
                  status, posted_by, applicants, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.CompanyLogo, job.Location, job.Type, job.Salary,
		job.SalaryRange.Min(), job.SalaryRange.Max(),
		job.Description, job.Requirements, job.Benefits, pq.Array(job.Tags),
		job.Experience, job.Education, job.ApplicationDeadline,
		job.Status, job.PostedBy, job.Applicants, job.CreatedAt, job.UpdatedAt,
	)
	return mapError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id), &job)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, mapError(err)
	}
	return &job, nil
}

// List returns jobs newest first.
func (r *jobRepo) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.PostedBy != "" {
		args = append(args, filter.PostedBy)
		conds = append(conds, "posted_by = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		if isInvalidText(err) {
			return []domain.Job{}, nil
		}
		return nil, mapError(err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, mapError(err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return jobs, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, company = $3, company_logo = $4, location = $5, type = $6, salary = $7,
                  salary_min = $8, salary_max = $9, description = $10, requirements = $11, benefits = $12,
                  tags = $13, experience = $14, education = $15, application_deadline = $16, status = $17,
                  updated_at = $18
              WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.CompanyLogo, job.Location, job.Type, job.Salary,
		job.SalaryRange.Min(), job.SalaryRange.Max(), job.Description, job.Requirements, job.Benefits,
		pq.Array(job.Tags), job.Experience, job.Education, job.ApplicationDeadline, job.Status,
		job.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("Job not found")
	}
	return nil
}

// Delete removes the job; its applications go with it through the foreign key.
// Deleting a missing job is not an error.
func (r *jobRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if isInvalidText(err) {
		return nil
	}
	return mapError(err)
}

func (r *jobRepo) IncrementApplicants(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE jobs SET applicants = applicants + 1 WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("Job not found")
	}
	return nil
}

// RecountApplicants sets the counter to the number of stored applications.
func (r *jobRepo) RecountApplicants(ctx context.Context, id string) (int, error) {
	query := `UPDATE jobs
              SET applicants = (SELECT COUNT(*) FROM applications WHERE job_id = $1), updated_at = NOW()
              WHERE id = $1
              RETURNING applicants`
	var n int
	if err := r.db.QueryRow(ctx, query, id).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return 0, apperror.NotFound("Job not found")
		}
		return 0, mapError(err)
	}
	return n, nil
}
