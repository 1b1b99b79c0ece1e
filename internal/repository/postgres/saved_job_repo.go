package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

// prefixedRow scans leading columns into dest before handing the rest to the
// caller's destinations.
type prefixedRow struct {
	pgx.Row
	dest []any
}

func (r prefixedRow) Scan(dest ...any) error {
	return r.Row.Scan(append(r.dest, dest...)...)
}

func (r *savedJobRepo) Save(ctx context.Context, userID, jobID string, savedAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (user_id, job_id, saved_at) VALUES ($1, $2, $3)
         ON CONFLICT (user_id, job_id) DO NOTHING`,
		userID, jobID, savedAt)
	return mapError(err)
}

func (r *savedJobRepo) Delete(ctx context.Context, userID, jobID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if isInvalidText(err) {
		return nil
	}
	return mapError(err)
}

func (r *savedJobRepo) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID).Scan(&exists)
	if isInvalidText(err) {
		return false, nil
	}
	return exists, mapError(err)
}

func (r *savedJobRepo) List(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	// saved_jobs shares no column names with jobs, so jobColumns needs no alias.
	rows, err := r.db.Query(ctx,
		`SELECT s.user_id, s.saved_at, `+jobColumns+`
         FROM saved_jobs s
         JOIN jobs j ON j.id = s.job_id
         WHERE s.user_id = $1
         ORDER BY s.saved_at DESC`, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	saved := []domain.SavedJob{}
	for rows.Next() {
		var s domain.SavedJob
		job := &domain.Job{}
		if err := scanJob(prefixedRow{Row: rows, dest: []any{&s.UserID, &s.SavedAt}}, job); err != nil {
			return nil, mapError(err)
		}
		s.JobID = job.ID
		s.Job = job
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}
