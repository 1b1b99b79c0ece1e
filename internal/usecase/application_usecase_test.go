package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeJob() *domain.Job {
	return &domain.Job{
		ID:       "job-1",
		Title:    "Backend Engineer",
		Company:  "Acme",
		Status:   domain.JobStatusActive,
		PostedBy: "recruiter-1",
	}
}

func payload() domain.ApplicationPayload {
	return domain.ApplicationPayload{FullName: "Jane Doe", Email: "jane@example.com"}
}

func newApplicationUsecase(apps *MockApplicationRepo, jobs *MockJobRepo, cache usecase.ListCache) domain.ApplicationUsecase {
	return usecase.NewApplicationUsecase(apps, jobs, cache, validation.Validator())
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a pending application and bumps the counter", func(t *testing.T) {
		apps, jobs, cache := new(MockApplicationRepo), new(MockJobRepo), newMemCache()
		jobs.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)
		apps.On("CheckExists", mock.Anything, "job-1", "cand-1").Return(false, nil)
		apps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)
		jobs.On("IncrementApplicants", mock.Anything, "job-1").Return(nil)

		app, err := newApplicationUsecase(apps, jobs, cache).Submit(ctx, "job-1", "cand-1", payload())
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "Backend Engineer", app.JobTitle)
		assert.Equal(t, "Acme", app.Company)
		assert.NotEmpty(t, app.ID)
		assert.False(t, app.AppliedDate.IsZero())
		assert.Equal(t, 1, cache.resets)
		jobs.AssertNumberOfCalls(t, "IncrementApplicants", 1)
	})

	t.Run("second application to the same job is a conflict", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)
		apps.On("CheckExists", mock.Anything, "job-1", "cand-1").Return(false, nil).Once()
		apps.On("CheckExists", mock.Anything, "job-1", "cand-1").Return(true, nil).Once()
		apps.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		jobs.On("IncrementApplicants", mock.Anything, "job-1").Return(nil)

		uc := newApplicationUsecase(apps, jobs, nil)
		_, err := uc.Submit(ctx, "job-1", "cand-1", payload())
		require.NoError(t, err)

		_, err = uc.Submit(ctx, "job-1", "cand-1", payload())
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
		assert.Equal(t, domain.ErrAlreadyApplied, err.Error())
		apps.AssertNumberOfCalls(t, "Create", 1)
		jobs.AssertNumberOfCalls(t, "IncrementApplicants", 1)
	})

	t.Run("losing a concurrent race surfaces the constraint conflict", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)
		apps.On("CheckExists", mock.Anything, "job-1", "cand-1").Return(false, nil)
		apps.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict(domain.ErrAlreadyApplied))

		_, err := newApplicationUsecase(apps, jobs, nil).Submit(ctx, "job-1", "cand-1", payload())
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
		jobs.AssertNotCalled(t, "IncrementApplicants", mock.Anything, mock.Anything)
	})

	t.Run("counter failure does not fail the submission", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)
		apps.On("CheckExists", mock.Anything, "job-1", "cand-1").Return(false, nil)
		apps.On("Create", mock.Anything, mock.Anything).Return(nil)
		jobs.On("IncrementApplicants", mock.Anything, "job-1").Return(errors.New("connection reset"))

		app, err := newApplicationUsecase(apps, jobs, nil).Submit(ctx, "job-1", "cand-1", payload())
		require.NoError(t, err)
		assert.NotNil(t, app)
	})

	t.Run("closed job rejects applications", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		job := activeJob()
		job.Status = domain.JobStatusClosed
		jobs.On("GetByID", mock.Anything, "job-1").Return(job, nil)

		_, err := newApplicationUsecase(apps, jobs, nil).Submit(ctx, "job-1", "cand-1", payload())
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown job is not found", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, "missing").Return(nil, apperror.NotFound("Job not found"))

		_, err := newApplicationUsecase(apps, jobs, nil).Submit(ctx, "missing", "cand-1", payload())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("missing identifiers are rejected before any lookup", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		uc := newApplicationUsecase(apps, jobs, nil)

		_, err := uc.Submit(ctx, "", "cand-1", payload())
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		_, err = uc.Submit(ctx, "job-1", "cand-1", domain.ApplicationPayload{})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		jobs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("cannot apply on behalf of another user", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		_, err := newApplicationUsecase(apps, jobs, nil).
			Submit(asUser("cand-2", domain.RoleCandidate), "job-1", "cand-1", payload())
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Application{ID: "app-1", JobID: "job-1", UserID: "cand-1", Status: domain.ApplicationStatusPending}

	t.Run("any status can follow any other", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		apps.On("GetByID", mock.Anything, "app-1").Return(stored, nil)
		for _, s := range []string{domain.ApplicationStatusInterview, domain.ApplicationStatusPending} {
			apps.On("UpdateStatus", mock.Anything, "app-1", s, (*string)(nil)).
				Return(&domain.Application{ID: "app-1", Status: s}, nil).Once()
		}
		uc := newApplicationUsecase(apps, jobs, nil)

		app, err := uc.SetStatus(ctx, "app-1", domain.ApplicationStatusInterview, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusInterview, app.Status)

		app, err = uc.SetStatus(ctx, "app-1", domain.ApplicationStatusPending, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)

		_, err = uc.SetStatus(ctx, "app-1", "Bogus", nil)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		apps.AssertNumberOfCalls(t, "UpdateStatus", 2)
	})

	t.Run("feedback is trimmed and passed through", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		apps.On("GetByID", mock.Anything, "app-1").Return(stored, nil)
		apps.On("UpdateStatus", mock.Anything, "app-1", domain.ApplicationStatusRejected,
			mock.MatchedBy(func(f *string) bool { return f != nil && *f == "Position filled" })).
			Return(&domain.Application{ID: "app-1", Status: domain.ApplicationStatusRejected}, nil)

		fb := "  Position filled "
		_, err := newApplicationUsecase(apps, jobs, nil).SetStatus(ctx, "app-1", domain.ApplicationStatusRejected, &fb)
		require.NoError(t, err)
		apps.AssertExpectations(t)
	})

	t.Run("unknown application is not found", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		apps.On("GetByID", mock.Anything, "nope").Return(nil, apperror.NotFound("Application not found"))

		_, err := newApplicationUsecase(apps, jobs, nil).SetStatus(ctx, "nope", domain.ApplicationStatusAccepted, nil)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("only the job owner may change status", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		apps.On("GetByID", mock.Anything, "app-1").Return(stored, nil)
		jobs.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)

		_, err := newApplicationUsecase(apps, jobs, nil).
			SetStatus(asUser("recruiter-2", domain.RoleRecruiter), "app-1", domain.ApplicationStatusAccepted, nil)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWithdraw(t *testing.T) {
	stored := &domain.Application{ID: "app-1", JobID: "job-1", UserID: "cand-1"}

	t.Run("owner can withdraw", func(t *testing.T) {
		apps, jobs, cache := new(MockApplicationRepo), new(MockJobRepo), newMemCache()
		apps.On("GetByID", mock.Anything, "app-1").Return(stored, nil)
		apps.On("Delete", mock.Anything, "app-1").Return(nil)

		err := newApplicationUsecase(apps, jobs, cache).Withdraw(context.Background(), "app-1", "cand-1")
		require.NoError(t, err)
		assert.Equal(t, 1, cache.resets)
	})

	t.Run("another user cannot", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		apps.On("GetByID", mock.Anything, "app-1").Return(stored, nil)

		err := newApplicationUsecase(apps, jobs, nil).Withdraw(context.Background(), "app-1", "cand-2")
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		apps.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestListApplicationsRequiresFilter(t *testing.T) {
	apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
	uc := newApplicationUsecase(apps, jobs, nil)

	_, err := uc.ListApplications(context.Background(), domain.ApplicationFilter{})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	filter := domain.ApplicationFilter{JobID: "job-1"}
	apps.On("List", mock.Anything, filter).Return([]domain.Application{{ID: "app-1"}}, nil)
	list, err := uc.ListApplications(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestApplicationReadAccess(t *testing.T) {
	stored := &domain.Application{ID: "app-1", JobID: "job-1", UserID: "cand-1", Email: "jane@example.com"}

	t.Run("candidate lists own applications", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		filter := domain.ApplicationFilter{UserID: "cand-1"}
		apps.On("List", mock.Anything, filter).Return([]domain.Application{*stored}, nil)

		list, err := newApplicationUsecase(apps, jobs, nil).ListApplications(asUser("cand-1", domain.RoleCandidate), filter)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("candidate cannot list someone else", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		uc := newApplicationUsecase(apps, jobs, nil)

		_, err := uc.ListApplications(asUser("cand-2", domain.RoleCandidate), domain.ApplicationFilter{UserID: "cand-1"})
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		_, err = uc.ListApplications(asUser("cand-2", domain.RoleCandidate), domain.ApplicationFilter{JobID: "job-1"})
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		apps.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("recruiter lists applicants of own job only", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)
		filter := domain.ApplicationFilter{JobID: "job-1"}
		apps.On("List", mock.Anything, filter).Return([]domain.Application{*stored}, nil)
		uc := newApplicationUsecase(apps, jobs, nil)

		_, err := uc.ListApplications(asUser("recruiter-1", domain.RoleRecruiter), filter)
		require.NoError(t, err)

		_, err = uc.ListApplications(asUser("recruiter-2", domain.RoleRecruiter), filter)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

		_, err = uc.ListApplications(asUser("recruiter-1", domain.RoleRecruiter), domain.ApplicationFilter{UserID: "cand-1"})
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		apps.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("get is limited to candidate and job owner", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		apps.On("GetByID", mock.Anything, "app-1").Return(stored, nil)
		jobs.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)
		uc := newApplicationUsecase(apps, jobs, nil)

		_, err := uc.GetApplication(asUser("cand-1", domain.RoleCandidate), "app-1")
		require.NoError(t, err)
		_, err = uc.GetApplication(asUser("recruiter-1", domain.RoleRecruiter), "app-1")
		require.NoError(t, err)

		_, err = uc.GetApplication(asUser("cand-2", domain.RoleCandidate), "app-1")
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		_, err = uc.GetApplication(asUser("recruiter-2", domain.RoleRecruiter), "app-1")
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})
}
