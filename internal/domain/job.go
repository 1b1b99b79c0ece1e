package domain

import (
	"context"
	"time"
)

// Job status values
const (
	JobStatusActive = "Active"
	JobStatusClosed = "Closed"
	JobStatusDraft  = "Draft"
)

// Employment types accepted for Job.Type
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

var JobStatuses = []string{JobStatusActive, JobStatusClosed, JobStatusDraft}

var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

// SalaryRange is a [min, max] pair, serialized as a two-element array.
type SalaryRange [2]float64

func (s SalaryRange) Min() float64 { return s[0] }
func (s SalaryRange) Max() float64 { return s[1] }

type Job struct {
	ID                  string      `json:"id"`
	Title               string      `json:"title"`
	Company             string      `json:"company"`
	CompanyLogo         string      `json:"companyLogo,omitempty"`
	Location            string      `json:"location"`
	Type                string      `json:"type"`
	Salary              string      `json:"salary,omitempty"`
	SalaryRange         SalaryRange `json:"salaryRange"`
	Description         string      `json:"description"`
	Requirements        string      `json:"requirements,omitempty"`
	Benefits            string      `json:"benefits,omitempty"`
	Tags                []string    `json:"tags"`
	Experience          string      `json:"experience,omitempty"`
	Education           string      `json:"education,omitempty"`
	ApplicationDeadline string      `json:"applicationDeadline,omitempty"`
	Status              string      `json:"status"`
	PostedBy            string      `json:"postedBy"`
	Applicants          int         `json:"applicants"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`

	// Posted is a human label derived from CreatedAt ("Just now", "3 days ago").
	Posted string `json:"posted"`
}

// JobPatch carries a partial update; nil fields are left untouched.
type JobPatch struct {
	Title               *string      `json:"title"`
	Company             *string      `json:"company"`
	CompanyLogo         *string      `json:"companyLogo"`
	Location            *string      `json:"location"`
	Type                *string      `json:"type" binding:"omitempty,job_type"`
	Salary              *string      `json:"salary"`
	SalaryRange         *SalaryRange `json:"salaryRange"`
	Description         *string      `json:"description"`
	Requirements        *string      `json:"requirements"`
	Benefits            *string      `json:"benefits"`
	Tags                []string     `json:"tags"`
	Experience          *string      `json:"experience"`
	Education           *string      `json:"education"`
	ApplicationDeadline *string      `json:"applicationDeadline"`
	Status              *string      `json:"status" binding:"omitempty,job_status"`
}

// JobFilter narrows a job listing. Empty fields do not filter.
type JobFilter struct {
	Status   string
	PostedBy string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	List(ctx context.Context, filter JobFilter) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
	IncrementApplicants(ctx context.Context, id string) error
	RecountApplicants(ctx context.Context, id string) (int, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	UpdateJob(ctx context.Context, id string, patch *JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
	RecountApplicants(ctx context.Context, id string) (*Job, error)
}

// IsValidJobStatus reports whether s is one of JobStatuses.
func IsValidJobStatus(s string) bool {
	return contains(JobStatuses, s)
}

func IsValidJobType(s string) bool {
	return contains(JobTypes, s)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
