package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contactColumns = `id, first_name, last_name, email, subject, message, created_at`

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func scanContact(row pgx.Row, s *domain.ContactSubmission) error {
	return row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Subject, &s.Message, &s.CreatedAt)
}

func (r *contactRepo) Create(ctx context.Context, s *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (` + contactColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, s.ID, s.FirstName, s.LastName, s.Email, s.Subject, s.Message, s.CreatedAt)
	return mapError(err)
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	var s domain.ContactSubmission
	err := scanContact(r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM contact_submissions WHERE id = $1`, id), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, apperror.NotFound("Contact submission not found")
		}
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *contactRepo) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contactColumns+` FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	submissions := []domain.ContactSubmission{}
	for rows.Next() {
		var s domain.ContactSubmission
		if err := scanContact(rows, &s); err != nil {
			return nil, mapError(err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return submissions, nil
}
