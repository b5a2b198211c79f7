package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUnauthorized = errors.New("unauthorized access to resource")
	ErrLogNotFound  = errors.New("daily log not found")
	ErrLogConflict  = errors.New("daily log version conflict")
)

type DailyLogRepository interface {
	// Create persists a new log.
	Create(ctx context.Context, log *DailyLog) error

	// Update modifies an existing log.
	// Implementations must reject stale versions with ErrLogConflict.
	Update(ctx context.Context, log *DailyLog) error

	// Delete soft-deletes the log owned by userID.
	Delete(ctx context.Context, id string, userID string) error

	// GetByID retrieves a single non-deleted log.
	GetByID(ctx context.Context, id string) (*DailyLog, error)

	// ListByUserID returns every non-deleted log of the user, oldest day first.
	ListByUserID(ctx context.Context, userID string) ([]DailyLog, error)

	// ListByUserIDAndDateRange returns non-deleted logs whose day is within [from, to].
	ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]DailyLog, error)

	// GetChanges returns creations, updates and soft-deletes after since.
	GetChanges(ctx context.Context, userID string, since time.Time) ([]DailyLog, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)

	// Upsert creates the profile or replaces its targets.
	Upsert(ctx context.Context, profile *Profile) error
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
