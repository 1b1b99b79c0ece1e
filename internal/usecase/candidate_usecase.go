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

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
		now:      time.Now,
	}
}

// GetProfile returns the stored profile, or nil when the user has none yet.
func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.Validation("userId is required")
	}
	return u.repo.GetByUserID(ctx, userID)
}

// UpsertProfile creates the profile on first call and shallow-merges later
// calls into it: fields present in the input replace stored values, omitted
// fields keep them.
func (u *candidateUsecase) UpsertProfile(ctx context.Context, in *domain.ProfileInput) (*domain.CandidateProfile, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return nil, apperror.Validation("userId is required")
	}
	if err := requireOwner(ctx, in.UserID, "You can only update your own profile"); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation(validation.Message(err))
	}

	profile, err := u.repo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	if profile == nil {
		profile = &domain.CandidateProfile{
			ID:                   uuid.NewString(),
			UserID:               in.UserID,
			Skills:               []string{},
			EducationalDocuments: []domain.EducationalDocument{},
			CreatedAt:            now,
		}
	}

	mergeProfile(profile, in)
	profile.UpdatedAt = now

	if err := u.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func mergeProfile(p *domain.CandidateProfile, in *domain.ProfileInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&p.FirstName, in.FirstName)
	set(&p.LastName, in.LastName)
	set(&p.Email, in.Email)
	set(&p.Phone, in.Phone)
	set(&p.Location, in.Location)
	set(&p.Headline, in.Headline)
	set(&p.Summary, in.Summary)
	set(&p.LinkedIn, in.LinkedIn)
	set(&p.Website, in.Website)

	if in.Skills != nil {
		p.Skills = domain.NormalizeSkills(in.Skills)
	}
	if in.Resume != nil {
		resume := *in.Resume
		if resume.UploadDate.IsZero() {
			resume.UploadDate = time.Now().UTC()
		}
		p.Resume = &resume
	}
	if in.EducationalDocuments != nil {
		docs := make([]domain.EducationalDocument, len(*in.EducationalDocuments))
		copy(docs, *in.EducationalDocuments)
		p.EducationalDocuments = docs
	}
}
