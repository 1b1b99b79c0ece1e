package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/jobsearch"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
	cache    ListCache
	now      func() time.Time
}

// NewJobUsecase wires the job operations. cache may be nil.
func NewJobUsecase(jobRepo domain.JobRepository, userRepo domain.UserRepository, cache ListCache) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		cache:    cache,
		now:      time.Now,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	job.Location = strings.TrimSpace(job.Location)
	job.PostedBy = strings.TrimSpace(job.PostedBy)

	var missing []string
	for _, f := range []struct{ name, val string }{
		{"title", job.Title}, {"company", job.Company}, {"location", job.Location}, {"postedBy", job.PostedBy},
	} {
		if f.val == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperror.Validation("Missing required fields: " + strings.Join(missing, ", "))
	}

	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}
	if err := validateJobFields(job); err != nil {
		return err
	}
	if err := requireOwner(ctx, job.PostedBy, "You can only post jobs as yourself"); err != nil {
		return err
	}

	poster, err := u.userRepo.GetByID(ctx, job.PostedBy)
	if err != nil {
		return err
	}
	if poster == nil || poster.Role != domain.RoleRecruiter {
		return apperror.Validation("postedBy must reference a recruiter")
	}

	now := u.now()
	job.ID = uuid.NewString()
	job.Applicants = 0
	job.Tags = domain.NormalizeSkills(job.Tags)
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return err
	}
	job.Posted = jobsearch.PostedLabel(job.CreatedAt, now)
	invalidateJobs(u.cache)
	return nil
}

func validateJobFields(job *domain.Job) error {
	if !domain.IsValidJobStatus(job.Status) {
		return apperror.Validation("Status must be one of: Active, Closed, Draft")
	}
	if job.Type != "" && !domain.IsValidJobType(strings.ToLower(job.Type)) {
		return apperror.Validation("Type must be one of: full-time, part-time, contract, internship")
	}
	if job.SalaryRange.Min() < 0 || job.SalaryRange.Min() > job.SalaryRange.Max() {
		return apperror.Validation("Salary range minimum cannot be greater than maximum")
	}
	return nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Posted = jobsearch.PostedLabel(job.CreatedAt, u.now())
	return job, nil
}

// ListJobs returns the stored jobs for filter, newest first, with posted
// labels filled in. Results are served from the listing cache when present.
func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	if filter.Status != "" && !domain.IsValidJobStatus(filter.Status) {
		return nil, apperror.Validation("Status must be one of: Active, Closed, Draft")
	}

	jobs, ok := cachedJobs(u.cache, filter)
	if !ok {
		gen := cacheGeneration(u.cache)
		var err error
		jobs, err = u.jobRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		storeJobs(u.cache, filter, jobs, gen)
	}
	jobsearch.StampPosted(jobs, u.now())
	return jobs, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, patch *domain.JobPatch) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, job.PostedBy, "You can only edit your own jobs"); err != nil {
		return nil, err
	}
	if patch != nil {
		applyJobPatch(job, patch)
	}
	if strings.TrimSpace(job.Title) == "" || strings.TrimSpace(job.Company) == "" || strings.TrimSpace(job.Location) == "" {
		return nil, apperror.Validation("Title, company and location cannot be empty")
	}
	if err := validateJobFields(job); err != nil {
		return nil, err
	}

	job.UpdatedAt = u.now()
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	job.Posted = jobsearch.PostedLabel(job.CreatedAt, job.UpdatedAt)
	invalidateJobs(u.cache)
	return job, nil
}

func applyJobPatch(job *domain.Job, p *domain.JobPatch) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&job.Title, p.Title)
	setString(&job.Company, p.Company)
	setString(&job.CompanyLogo, p.CompanyLogo)
	setString(&job.Location, p.Location)
	setString(&job.Type, p.Type)
	setString(&job.Salary, p.Salary)
	setString(&job.Description, p.Description)
	setString(&job.Requirements, p.Requirements)
	setString(&job.Benefits, p.Benefits)
	setString(&job.Experience, p.Experience)
	setString(&job.Education, p.Education)
	setString(&job.ApplicationDeadline, p.ApplicationDeadline)
	setString(&job.Status, p.Status)
	if p.SalaryRange != nil {
		job.SalaryRange = *p.SalaryRange
	}
	if p.Tags != nil {
		job.Tags = domain.NormalizeSkills(p.Tags)
	}
}

// DeleteJob removes a job and its applications. A missing job is not an error.
func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil
		}
		return err
	}
	if err := requireOwner(ctx, job.PostedBy, "You can only delete your own jobs"); err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateJobs(u.cache)
	return nil
}

// RecountApplicants repairs the applicants counter from the stored applications.
func (u *jobUsecase) RecountApplicants(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, job.PostedBy, "You can only recount your own jobs"); err != nil {
		return nil, err
	}
	n, err := u.jobRepo.RecountApplicants(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Applicants = n
	job.Posted = jobsearch.PostedLabel(job.CreatedAt, u.now())
	invalidateJobs(u.cache)
	return job, nil
}
