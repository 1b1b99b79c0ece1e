package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `
		SELECT
			id, user_id, first_name, last_name, email, phone, location, headline, summary,
			skills, resume, educational_documents, linkedin, website, created_at, updated_at
		FROM candidate_profiles WHERE user_id = $1`

	var (
		p         domain.CandidateProfile
		skills    []string
		resume    []byte
		documents []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Location,
		&p.Headline, &p.Summary, pq.Array(&skills), &resume, &documents,
		&p.LinkedIn, &p.Website, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, mapError(err)
	}

	if skills == nil {
		skills = []string{}
	}
	p.Skills = skills

	if len(resume) > 0 && string(resume) != "null" {
		p.Resume = &domain.FileMeta{}
		if err := json.Unmarshal(resume, p.Resume); err != nil {
			return nil, mapError(fmt.Errorf("decode resume: %w", err))
		}
	}
	p.EducationalDocuments = []domain.EducationalDocument{}
	if len(documents) > 0 {
		if err := json.Unmarshal(documents, &p.EducationalDocuments); err != nil {
			return nil, mapError(fmt.Errorf("decode documents: %w", err))
		}
	}
	return &p, nil
}

// Upsert writes the whole profile keyed on user_id. Merging with the stored
// row is the caller's job.
func (r *candidateRepository) Upsert(ctx context.Context, p *domain.CandidateProfile) error {
	var resume *string
	if p.Resume != nil {
		b, err := json.Marshal(p.Resume)
		if err != nil {
			return fmt.Errorf("encode resume: %w", err)
		}
		s := string(b)
		resume = &s
	}
	docs := p.EducationalDocuments
	if docs == nil {
		docs = []domain.EducationalDocument{}
	}
	documents, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encode documents: %w", err)
	}

	query := `
		INSERT INTO candidate_profiles (
			id, user_id, first_name, last_name, email, phone, location, headline, summary,
			skills, resume, educational_documents, linkedin, website, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12::jsonb, $13, $14, $15, $16)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			headline = EXCLUDED.headline,
			summary = EXCLUDED.summary,
			skills = EXCLUDED.skills,
			resume = EXCLUDED.resume,
			educational_documents = EXCLUDED.educational_documents,
			linkedin = EXCLUDED.linkedin,
			website = EXCLUDED.website,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	err = r.db.QueryRow(ctx, query,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Email, p.Phone, p.Location, p.Headline, p.Summary,
		pq.Array(p.Skills), resume, string(documents), p.LinkedIn, p.Website, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	return mapError(err)
}
