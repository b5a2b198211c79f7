package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

type MockLogRepo struct {
	mock.Mock
}

func (m *MockLogRepo) Create(ctx context.Context, entry *domain.DailyLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockLogRepo) Update(ctx context.Context, entry *domain.DailyLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockLogRepo) Delete(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockLogRepo) GetByID(ctx context.Context, id string) (*domain.DailyLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyLog), args.Error(1)
}

func (m *MockLogRepo) ListByUserID(ctx context.Context, userID string) ([]domain.DailyLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyLog), args.Error(1)
}

func (m *MockLogRepo) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyLog, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyLog), args.Error(1)
}

func (m *MockLogRepo) GetChanges(ctx context.Context, userID string, since time.Time) ([]domain.DailyLog, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyLog), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type recordingNotifier struct {
	mu    sync.Mutex
	users []string
}

func (n *recordingNotifier) Enqueue(userID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, userID)
}

func (n *recordingNotifier) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.users...)
}
