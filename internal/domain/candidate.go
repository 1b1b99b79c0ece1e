package domain

import (
	"context"
	"math"
	"strings"
	"time"
)

// Educational document types
const (
	DocumentType10th      = "10th"
	DocumentType12th      = "12th"
	DocumentTypeDiploma   = "diploma"
	DocumentTypeBachelors = "bachelors"
	DocumentTypeMasters   = "masters"
	DocumentTypePhD       = "phd"
	DocumentTypeOther     = "other"
)

var DocumentTypes = []string{
	DocumentType10th, DocumentType12th, DocumentTypeDiploma,
	DocumentTypeBachelors, DocumentTypeMasters, DocumentTypePhD, DocumentTypeOther,
}

// FileMeta describes an uploaded file. Only metadata is stored; the file lives elsewhere.
type FileMeta struct {
	Name       string    `json:"name"`
	URL        string    `json:"url" validate:"required,url"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadDate time.Time `json:"uploadDate"`
}

type EducationalDocument struct {
	FileMeta
	DocumentType string `json:"documentType" validate:"required,document_type"`
}

// CandidateProfile is keyed by UserID; a candidate has at most one.
type CandidateProfile struct {
	ID                   string                `json:"id"`
	UserID               string                `json:"userId"`
	FirstName            string                `json:"firstName"`
	LastName             string                `json:"lastName"`
	Email                string                `json:"email"`
	Phone                string                `json:"phone,omitempty"`
	Location             string                `json:"location,omitempty"`
	Headline             string                `json:"headline,omitempty"`
	Summary              string                `json:"summary,omitempty"`
	Skills               []string              `json:"skills"`
	Resume               *FileMeta             `json:"resume,omitempty"`
	EducationalDocuments []EducationalDocument `json:"educationalDocuments"`
	LinkedIn             string                `json:"linkedIn,omitempty"`
	Website              string                `json:"website,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
}

// ProfileInput is an upsert request. Nil fields keep the stored value.
type ProfileInput struct {
	UserID               string                 `json:"userId" binding:"required"`
	FirstName            *string                `json:"firstName" validate:"omitempty,max=100,valid_name"`
	LastName             *string                `json:"lastName" validate:"omitempty,max=100,valid_name"`
	Email                *string                `json:"email" validate:"omitempty,email"`
	Phone                *string                `json:"phone" validate:"omitempty,valid_phone"`
	Location             *string                `json:"location"`
	Headline             *string                `json:"headline" validate:"omitempty,max=200"`
	Summary              *string                `json:"summary" validate:"omitempty,max=5000"`
	Skills               []string               `json:"skills"`
	Resume               *FileMeta              `json:"resume" validate:"omitempty"`
	EducationalDocuments *[]EducationalDocument `json:"educationalDocuments" validate:"omitempty,dive"`
	LinkedIn             *string                `json:"linkedIn" validate:"omitempty,url"`
	Website              *string                `json:"website" validate:"omitempty,url"`
}

const completionCheckpoints = 8

// Completion returns the share of the eight profile checkpoints that are
// filled in, as a rounded percentage.
func (p *CandidateProfile) Completion() int {
	if p == nil {
		return 0
	}
	checks := []bool{
		strings.TrimSpace(p.FirstName) != "",
		strings.TrimSpace(p.LastName) != "",
		strings.TrimSpace(p.Email) != "",
		strings.TrimSpace(p.Headline) != "",
		strings.TrimSpace(p.Summary) != "",
		len(p.Skills) > 0,
		p.Resume != nil,
		len(p.EducationalDocuments) > 0,
	}
	n := 0
	for _, ok := range checks {
		if ok {
			n++
		}
	}
	return int(math.Round(float64(n) / completionCheckpoints * 100))
}

// NormalizeSkills trims, drops empties and removes case-insensitive duplicates.
// The first spelling of a skill wins.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func IsValidDocumentType(s string) bool {
	return contains(DocumentTypes, s)
}

type CandidateRepository interface {
	// GetByUserID returns (nil, nil) when the user has no profile yet.
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Upsert(ctx context.Context, profile *CandidateProfile) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	UpsertProfile(ctx context.Context, in *ProfileInput) (*CandidateProfile, error)
}
