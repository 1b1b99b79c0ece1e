package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TokenIssuer interface {
	Issue(userID, role, email string) (string, time.Time, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type ResetMailer interface {
	SendResetCode(to, code string, ttl time.Duration) error
}

// LoginGuard tracks failed logins per email. *security.LoginTracker
// satisfies it.
type LoginGuard interface {
	IsBlocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) (bool, error)
	Clear(ctx context.Context, email string) error
}

type authUsecase struct {
	userRepo     domain.UserRepository
	tokens       TokenIssuer
	hasher       PasswordHasher
	mailer       ResetMailer
	guard        LoginGuard
	resetCodeTTL time.Duration
	validate     *validator.Validate
	now          func() time.Time
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens TokenIssuer,
	hasher PasswordHasher,
	mailer ResetMailer,
	guard LoginGuard,
	resetCodeTTL time.Duration,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		tokens:       tokens,
		hasher:       hasher,
		mailer:       mailer,
		guard:        guard,
		resetCodeTTL: resetCodeTTL,
		validate:     validate,
		now:          time.Now,
	}
}

func (u *authUsecase) Signup(ctx context.Context, in domain.SignupInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Company = strings.TrimSpace(in.Company)

	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation(validation.Message(err))
	}

	existing, err := u.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("User with this email already exists")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := u.now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Role == domain.RoleRecruiter {
		company := in.Company
		user.Company = &company
	}

	// The unique index still catches a concurrent signup with the same email.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, in domain.LoginInput) (*domain.Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if u.guard != nil {
		blocked, err := u.guard.IsBlocked(ctx, email)
		if err != nil {
			// tracker errors never block a login
			logger.Log.Warn().Err(err).Msg("login tracker unavailable")
		} else if blocked {
			security.Default().Log(ctx, security.Event{Type: security.EventLoginBlocked, SubjectType: "email", SubjectValue: email})
			return nil, apperror.TooManyRequests("Too many failed login attempts. Please try again later.")
		}
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != in.Role {
		return nil, apperror.NotFound("User not found")
	}
	if !u.hasher.Compare(user.PasswordHash, in.Password) {
		if u.guard != nil {
			blocked, err := u.guard.RecordFailure(ctx, email)
			if err != nil {
				logger.Log.Warn().Err(err).Msg("failed login not recorded")
			} else if blocked {
				return nil, apperror.TooManyRequests("Too many failed login attempts. Please try again later.")
			}
		}
		return nil, apperror.Unauthorized("Invalid password")
	}

	if u.guard != nil {
		if err := u.guard.Clear(ctx, email); err != nil {
			logger.Log.Warn().Err(err).Msg("failed logins not cleared")
		}
	}
	token, exp, err := u.tokens.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	security.Default().Log(ctx, security.Event{Type: security.EventLoginSuccess, SubjectType: "user_id", SubjectValue: user.ID})
	return &domain.Session{User: user, Token: token, ExpiresAt: exp}, nil
}

// ForgotPassword stores a fresh reset code and mails it. The mail is best
// effort; the code is stored either way.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperror.Validation("Email is required")
	}
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	code, err := auth.NewResetCode()
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.userRepo.SetResetCode(ctx, user.Email, code, u.now().Add(u.resetCodeTTL)); err != nil {
		return err
	}

	if u.mailer != nil {
		if err := u.mailer.SendResetCode(user.Email, code, u.resetCodeTTL); err != nil {
			logger.Log.Warn().Err(err).Str("user_id", user.ID).Msg("reset code email not sent")
		}
	}
	return nil
}

func (u *authUsecase) VerifyResetCode(ctx context.Context, email, code string) error {
	_, err := u.checkResetCode(ctx, email, code)
	return err
}

func (u *authUsecase) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if len(newPassword) < 8 || len(newPassword) > 72 {
		return apperror.Validation("Password must be between 8 and 72 characters")
	}
	user, err := u.checkResetCode(ctx, email, code)
	if err != nil {
		return err
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}
	security.Default().Log(ctx, security.Event{Type: security.EventPasswordReset, SubjectType: "user_id", SubjectValue: user.ID})
	return nil
}

func (u *authUsecase) checkResetCode(ctx context.Context, email, code string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return nil, apperror.Validation("Email and code are required")
	}
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.ResetCode == nil || user.ResetCodeExpires == nil ||
		*user.ResetCode != code || !u.now().Before(*user.ResetCodeExpires) {
		return nil, apperror.Validation("Invalid or expired reset code")
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
