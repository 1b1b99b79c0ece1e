package domain

import (
	"context"
	"time"
)

// Application status values, in lifecycle order. Any status may be set from any
// other; recruiters use backward moves to correct mistakes.
const (
	ApplicationStatusPending   = "Pending"
	ApplicationStatusReviewed  = "Reviewed"
	ApplicationStatusInterview = "Interview"
	ApplicationStatusAccepted  = "Accepted"
	ApplicationStatusRejected  = "Rejected"
)

var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusInterview,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// ErrAlreadyApplied is the message carried by the duplicate-application conflict.
// Route handlers and clients match on "already applied".
const ErrAlreadyApplied = "You have already applied to this job"

// Application represents a candidate's submission to a job. The contact fields
// are a snapshot taken at submission time.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	UserID      string    `json:"userId"`
	JobTitle    string    `json:"jobTitle"`
	Company     string    `json:"company"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	ResumeURL   string    `json:"resumeUrl,omitempty"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	Status      string    `json:"status"`
	Feedback    *string   `json:"feedback,omitempty"`
	AppliedDate time.Time `json:"appliedDate"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ApplicationPayload is the candidate-supplied part of a submission.
type ApplicationPayload struct {
	FullName    string `json:"fullName" validate:"omitempty,max=200,valid_name"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,valid_phone"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,url"`
	CoverLetter string `json:"coverLetter" validate:"max=5000"`
}

// ApplicationFilter selects applications by a single owning field.
type ApplicationFilter struct {
	UserID string
	JobID  string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]Application, error)
	CheckExists(ctx context.Context, jobID, userID string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string, feedback *string) (*Application, error)
	// Delete removes the application and decrements the owning job's counter in
	// the same transaction.
	Delete(ctx context.Context, id string) error
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, jobID, userID string, payload ApplicationPayload) (*Application, error)
	SetStatus(ctx context.Context, applicationID, status string, feedback *string) (*Application, error)
	Withdraw(ctx context.Context, applicationID, userID string) error
	GetApplication(ctx context.Context, id string) (*Application, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]Application, error)
}

func IsValidApplicationStatus(s string) bool {
	return contains(ApplicationStatuses, s)
}
