package usecase_test

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/email"

	"github.com/stretchr/testify/mock"
)

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepo) IncrementApplicants(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepo) RecountApplicants(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobID, userID string) (bool, error) {
	args := m.Called(ctx, jobID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status string, feedback *string) (*domain.Application, error) {
	args := m.Called(ctx, id, status, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) SetResetCode(ctx context.Context, email, code string, expires time.Time) error {
	return m.Called(ctx, email, code, expires).Error(0)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, c *domain.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) List(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) Update(ctx context.Context, c *domain.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, s *domain.ContactSubmission) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactSubmission), args.Error(1)
}

func (m *MockContactRepo) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactSubmission), args.Error(1)
}

type MockContactMailer struct {
	mock.Mock
}

func (m *MockContactMailer) SendContactEmail(data email.ContactEmailData) error {
	return m.Called(data).Error(0)
}

type MockResetMailer struct {
	mock.Mock
}

func (m *MockResetMailer) SendResetCode(to, code string, ttl time.Duration) error {
	return m.Called(to, code, ttl).Error(0)
}

// memCache is a map-backed ListCache.
type memCache struct {
	items  map[string][]byte
	resets int
}

func (c *memCache) Generation() uint64 {
	return uint64(c.resets)
}

func (c *memCache) SetIfGeneration(key string, val []byte, gen uint64) (bool, error) {
	if gen != c.Generation() {
		return false, nil
	}
	return true, c.Set(key, val)
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (c *memCache) Get(key string) ([]byte, bool) {
	v, ok := c.items[key]
	return v, ok
}

func (c *memCache) Set(key string, val []byte) error {
	c.items[key] = val
	return nil
}

func (c *memCache) Reset() error {
	c.items = map[string][]byte{}
	c.resets++
	return nil
}

type MockSavedJobRepo struct {
	mock.Mock
}

func (m *MockSavedJobRepo) Save(ctx context.Context, userID, jobID string, savedAt time.Time) error {
	return m.Called(ctx, userID, jobID, savedAt).Error(0)
}

func (m *MockSavedJobRepo) Delete(ctx context.Context, userID, jobID string) error {
	return m.Called(ctx, userID, jobID).Error(0)
}

func (m *MockSavedJobRepo) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSavedJobRepo) List(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedJob), args.Error(1)
}

// asUser returns a context carrying an authenticated user.
func asUser(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, id)
	return context.WithValue(ctx, domain.KeyUserRole, role)
}
