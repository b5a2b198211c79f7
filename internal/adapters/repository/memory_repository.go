package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

// The in-memory repositories back STORAGE=memory and the end-to-end tests.
// They hand out copies so callers can never mutate stored state.

var (
	_ domain.DailyLogRepository = (*InMemoryLogRepository)(nil)
	_ domain.ProfileRepository  = (*InMemoryProfileRepository)(nil)
	_ domain.UserRepository     = (*InMemoryUserRepository)(nil)
)

type InMemoryLogRepository struct {
	store map[string]domain.DailyLog

	mu sync.RWMutex
}

func NewInMemoryLogRepository() *InMemoryLogRepository {
	return &InMemoryLogRepository{
		store: make(map[string]domain.DailyLog),
	}
}

func (r *InMemoryLogRepository) Create(ctx context.Context, entry *domain.DailyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if _, ok := r.store[entry.ID]; ok {
		return domain.ErrLogConflict
	}

	r.store[entry.ID] = *entry
	return nil
}

func (r *InMemoryLogRepository) GetByID(ctx context.Context, id string) (*domain.DailyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[id]
	if !ok || entry.DeletedAt != nil {
		return nil, domain.ErrLogNotFound
	}
	return &entry, nil
}

func (r *InMemoryLogRepository) ListByUserID(ctx context.Context, userID string) ([]domain.DailyLog, error) {
	return r.list(func(l domain.DailyLog) bool {
		return l.UserID == userID && l.DeletedAt == nil
	}), nil
}

func (r *InMemoryLogRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyLog, error) {
	return r.list(func(l domain.DailyLog) bool {
		return l.UserID == userID && l.DeletedAt == nil && !l.Date.Before(from) && !l.Date.After(to)
	}), nil
}

func (r *InMemoryLogRepository) GetChanges(ctx context.Context, userID string, since time.Time) ([]domain.DailyLog, error) {
	changes := r.list(func(l domain.DailyLog) bool {
		return l.UserID == userID && l.UpdatedAt.After(since)
	})
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].UpdatedAt.Before(changes[j].UpdatedAt)
	})
	return changes, nil
}

func (r *InMemoryLogRepository) Update(ctx context.Context, entry *domain.DailyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.store[entry.ID]
	if !ok || stored.DeletedAt != nil {
		return domain.ErrLogNotFound
	}
	if stored.Version != entry.Version {
		return domain.ErrLogConflict
	}

	entry.Version++
	entry.UpdatedAt = time.Now().UTC()
	r.store[entry.ID] = *entry
	return nil
}

func (r *InMemoryLogRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.store[id]
	if !ok || stored.DeletedAt != nil || stored.UserID != userID {
		return domain.ErrLogNotFound
	}

	now := time.Now().UTC()
	stored.DeletedAt = &now
	stored.UpdatedAt = now
	stored.Version++
	r.store[id] = stored
	return nil
}

// list returns matches ordered by day, then creation time.
func (r *InMemoryLogRepository) list(match func(domain.DailyLog) bool) []domain.DailyLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := []domain.DailyLog{}
	for _, l := range r.store {
		if match(l) {
			logs = append(logs, l)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].Date.Equal(logs[j].Date) {
			return logs[i].Date.Before(logs[j].Date)
		}
		return logs[i].CreatedAt.Before(logs[j].CreatedAt)
	})

	return logs
}

type InMemoryProfileRepository struct {
	store map[string]domain.Profile

	mu sync.RWMutex
}

func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{
		store: make(map[string]domain.Profile),
	}
}

func (r *InMemoryProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &profile, nil
}

// Upsert follows the postgres contract: an existing profile only accepts Version-1.
func (r *InMemoryProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.store[profile.UserID]; ok && stored.Version != profile.Version-1 {
		return domain.ErrProfileConflict
	}

	r.store[profile.UserID] = *profile
	return nil
}

type InMemoryUserRepository struct {
	byID    map[string]domain.User
	byEmail map[string]string

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}

	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}
