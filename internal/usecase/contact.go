package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ContactMailer interface {
	SendContactEmail(data email.ContactEmailData) error
}

type contactUsecase struct {
	repo     domain.ContactRepository
	mailer   ContactMailer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. mailer may be nil, in which
// case submissions are only stored.
func NewContactUsecase(repo domain.ContactRepository, mailer ContactMailer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		mailer:   mailer,
		validate: validate,
	}
}

// Submit stores the submission first, then notifies by email.
func (uc *contactUsecase) Submit(ctx context.Context, s *domain.ContactSubmission) (bool, error) {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.TrimSpace(s.Email)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)

	if err := uc.validate.Struct(s); err != nil {
		return false, apperror.Validation(validation.Message(err))
	}

	s.ID = uuid.NewString()
	s.CreatedAt = time.Now()
	if err := uc.repo.Create(ctx, s); err != nil {
		return false, err
	}

	if uc.mailer == nil {
		return false, nil
	}
	err := uc.mailer.SendContactEmail(email.ContactEmailData{
		SenderName:  strings.TrimSpace(s.FirstName + " " + s.LastName),
		SenderEmail: s.Email,
		Subject:     s.Subject,
		Message:     s.Message,
	})
	if err != nil {
		logger.Log.Warn().Err(err).Str("submission_id", s.ID).Msg("contact notification not sent")
		return false, nil
	}
	return true, nil
}

func (uc *contactUsecase) GetSubmission(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *contactUsecase) ListSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	return uc.repo.List(ctx)
}
