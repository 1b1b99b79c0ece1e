package domain_test

import (
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func fullProfile() *domain.CandidateProfile {
	return &domain.CandidateProfile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Headline:  "Engineer",
		Summary:   "Writes programs",
		Skills:    []string{"go"},
		Resume:    &domain.FileMeta{Name: "cv.pdf", URL: "https://files.example.com/cv.pdf", UploadDate: time.Now()},
		EducationalDocuments: []domain.EducationalDocument{
			{FileMeta: domain.FileMeta{Name: "deg.pdf", URL: "https://files.example.com/deg.pdf"}, DocumentType: domain.DocumentTypeBachelors},
		},
	}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name    string
		profile *domain.CandidateProfile
		want    int
	}{
		{"nil profile", nil, 0},
		{"empty profile", &domain.CandidateProfile{}, 0},
		{"one checkpoint", &domain.CandidateProfile{FirstName: "Ada"}, 13},
		{"whitespace does not count", &domain.CandidateProfile{FirstName: "  "}, 0},
		{"three checkpoints", &domain.CandidateProfile{FirstName: "Ada", LastName: "L", Email: "a@b.c"}, 38},
		{"four checkpoints", &domain.CandidateProfile{FirstName: "Ada", LastName: "L", Email: "a@b.c", Headline: "x"}, 50},
		{"empty skills slice", &domain.CandidateProfile{Skills: []string{}}, 0},
		{"complete", fullProfile(), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.Completion())
		})
	}
}

func TestCompletionMonotonic(t *testing.T) {
	full := fullProfile()
	steps := []func(p *domain.CandidateProfile){
		func(p *domain.CandidateProfile) { p.FirstName = full.FirstName },
		func(p *domain.CandidateProfile) { p.LastName = full.LastName },
		func(p *domain.CandidateProfile) { p.Email = full.Email },
		func(p *domain.CandidateProfile) { p.Headline = full.Headline },
		func(p *domain.CandidateProfile) { p.Summary = full.Summary },
		func(p *domain.CandidateProfile) { p.Skills = full.Skills },
		func(p *domain.CandidateProfile) { p.Resume = full.Resume },
		func(p *domain.CandidateProfile) { p.EducationalDocuments = full.EducationalDocuments },
	}

	// Apply the steps in forward and reverse order; completion must never drop.
	for _, reverse := range []bool{false, true} {
		p := &domain.CandidateProfile{}
		prev := p.Completion()
		for i := range steps {
			idx := i
			if reverse {
				idx = len(steps) - 1 - i
			}
			steps[idx](p)
			got := p.Completion()
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
		assert.Equal(t, 100, prev)
	}
}

func TestNormalizeSkills(t *testing.T) {
	got := domain.NormalizeSkills([]string{"Go", " go ", "", "SQL", "sql", "Docker"})
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, got)

	assert.Empty(t, domain.NormalizeSkills(nil))
	assert.NotNil(t, domain.NormalizeSkills(nil))
}

func TestStatusValidators(t *testing.T) {
	for _, s := range domain.ApplicationStatuses {
		assert.True(t, domain.IsValidApplicationStatus(s))
	}
	assert.False(t, domain.IsValidApplicationStatus("Bogus"))
	assert.False(t, domain.IsValidApplicationStatus("pending"))

	assert.True(t, domain.IsValidJobStatus(domain.JobStatusDraft))
	assert.False(t, domain.IsValidJobStatus("Archived"))

	assert.True(t, domain.IsValidDocumentType("phd"))
	assert.False(t, domain.IsValidDocumentType("certificate"))
}
