package domain

import (
	"context"
	"time"
)

const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	Role             string     `json:"role"`
	Company          *string    `json:"company,omitempty"`
	ResetCode        *string    `json:"-"`
	ResetCodeExpires *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// SignupInput is validated before a User is created.
type SignupInput struct {
	Name     string `json:"name" binding:"required" validate:"required,max=200,valid_name,no_emoji"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required,min=8" validate:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=candidate recruiter" validate:"required,oneof=candidate recruiter"`
	Company  string `json:"company" validate:"required_if=Role recruiter"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=candidate recruiter"`
}

// Session is returned on successful login.
type Session struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	// GetByID and GetByEmail return (nil, nil) when the user does not exist.
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	SetResetCode(ctx context.Context, email, code string, expires time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type AuthUsecase interface {
	Signup(ctx context.Context, in SignupInput) (*User, error)
	Login(ctx context.Context, in LoginInput) (*Session, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
