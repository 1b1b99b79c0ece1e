package domain

import (
	"context"
	"time"
)

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName" binding:"required" validate:"required,max=100,no_emoji"`
	LastName  string    `json:"lastName" validate:"max=100"`
	Email     string    `json:"email" binding:"required,email" validate:"required,email"`
	Subject   string    `json:"subject" validate:"max=200"`
	Message   string    `json:"message" binding:"required" validate:"required,max=5000"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactRepository interface {
	Create(ctx context.Context, submission *ContactSubmission) error
	// GetByID returns NotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*ContactSubmission, error)
	// List returns submissions newest first.
	List(ctx context.Context) ([]ContactSubmission, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit stores the submission and then notifies by email. The returned
	// bool reports whether the notification went out; a mail failure does not
	// fail the call.
	Submit(ctx context.Context, submission *ContactSubmission) (bool, error)
	GetSubmission(ctx context.Context, id string) (*ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]ContactSubmission, error)
}
