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
)

const applicationColumns = `id, job_id, user_id, job_title, company, full_name, email, phone, resume_url,
	cover_letter, status, feedback, applied_date, updated_at`

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplication(row pgx.Row, app *domain.Application) error {
	return row.Scan(
		&app.ID, &app.JobID, &app.UserID, &app.JobTitle, &app.Company, &app.FullName, &app.Email,
		&app.Phone, &app.ResumeURL, &app.CoverLetter, &app.Status, &app.Feedback,
		&app.AppliedDate, &app.UpdatedAt,
	)
}

// Create inserts a new application. A second application for the same job and
// user fails on applications_job_user_key and surfaces as a conflict.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (id, job_id, user_id, job_title, company, full_name, email, phone,
			resume_url, cover_letter, status, feedback, applied_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.UserID, app.JobTitle, app.Company, app.FullName, app.Email, app.Phone,
		app.ResumeURL, app.CoverLetter, app.Status, app.Feedback, app.AppliedDate, app.UpdatedAt,
	)
	return mapError(err)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	err := scanApplication(r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id), &app)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, mapError(err)
	}
	return &app, nil
}

// List returns applications newest first, filtered by user and/or job.
func (r *applicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	var (
		conds []string
		args  []any
	)
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, "user_id = $"+strconv.Itoa(len(args)))
	}
	if filter.JobID != "" {
		args = append(args, filter.JobID)
		conds = append(conds, "job_id = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + applicationColumns + ` FROM applications`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY applied_date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		if isInvalidText(err) {
			return []domain.Application{}, nil
		}
		return nil, mapError(err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app); err != nil {
			return nil, mapError(err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return apps, nil
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobID, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, jobID, userID).Scan(&exists); err != nil {
		if isInvalidText(err) {
			return false, nil
		}
		return false, mapError(err)
	}
	return exists, nil
}

// UpdateStatus sets the status and, when given, the feedback text. A nil
// feedback keeps what was stored.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string, feedback *string) (*domain.Application, error) {
	query := `
		UPDATE applications
		SET status = $2, feedback = COALESCE($3, feedback), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + applicationColumns

	var app domain.Application
	if err := scanApplication(r.db.QueryRow(ctx, query, id, status, feedback), &app); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, mapError(err)
	}
	return &app, nil
}

// Delete removes the application and decrements its job's counter in one
// transaction. The counter never goes below zero.
func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback(ctx)

	var jobID string
	err = tx.QueryRow(ctx, `DELETE FROM applications WHERE id = $1 RETURNING job_id`, id).Scan(&jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return apperror.NotFound("Application not found")
		}
		return mapError(err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE jobs SET applicants = GREATEST(applicants - 1, 0) WHERE id = $1`, jobID)
	if err != nil {
		return mapError(err)
	}

	return mapError(tx.Commit(ctx))
}
