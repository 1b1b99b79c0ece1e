package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password_hash, role, company, reset_code, reset_code_expires, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, role, company, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, strings.ToLower(user.Email), user.PasswordHash, user.Role, user.Company,
		user.CreatedAt, user.UpdatedAt,
	)
	return mapError(err)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
}

func (r *userRepo) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.Company,
		&user.ResetCode, &user.ResetCodeExpires, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepo) SetResetCode(ctx context.Context, email, code string, expires time.Time) error {
	query := `UPDATE users SET reset_code = $2, reset_code_expires = $3, updated_at = NOW() WHERE email = $1`
	_, err := r.db.Exec(ctx, query, strings.ToLower(email), code, expires)
	return mapError(err)
}

// UpdatePassword stores a new hash and clears any pending reset code.
func (r *userRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users
              SET password_hash = $2, reset_code = NULL, reset_code_expires = NULL, updated_at = NOW()
              WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, passwordHash)
	return mapError(err)
}
