package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

// WeightNotifier is told when a user's weight history changed.
type WeightNotifier interface {
	Enqueue(userID string)
}

type LogService struct {
	repo     domain.DailyLogRepository
	notifier WeightNotifier
}

func NewLogService(repo domain.DailyLogRepository, notifier WeightNotifier) *LogService {
	return &LogService{
		repo:     repo,
		notifier: notifier,
	}
}

type CreateLogInput struct {
	UserID string
	Date   time.Time
	Metric domain.Metric
	Value  float64
	Notes  string
}

type UpdateLogInput struct {
	ID      string
	UserID  string
	Value   float64
	Notes   string
	Version int
}

func (s *LogService) Create(ctx context.Context, input CreateLogInput) (*domain.DailyLog, error) {
	entry := domain.NewDailyLog(input.UserID, input.Date, input.Metric, input.Value)
	entry.Notes = input.Notes

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.notify(entry)

	return entry, nil
}

func (s *LogService) Update(ctx context.Context, input UpdateLogInput) (*domain.DailyLog, error) {
	existing, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Version > 0 && existing.Version != input.Version {
		return nil, domain.ErrLogConflict
	}

	existing.Value = input.Value
	existing.Notes = input.Notes

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.notify(existing)

	return existing, nil
}

func (s *LogService) GetByID(ctx context.Context, id string, userID string) (*domain.DailyLog, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return entry, nil
}

func (s *LogService) List(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyLog, error) {
	return s.repo.ListByUserIDAndDateRange(ctx, userID, domain.CalendarDay(from), domain.CalendarDay(to))
}

func (s *LogService) Delete(ctx context.Context, id string, userID string) error {
	entry, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.notify(entry)

	return nil
}

func (s *LogService) GetDelta(ctx context.Context, userID string, since time.Time) ([]domain.DailyLog, error) {
	return s.repo.GetChanges(ctx, userID, since)
}

func (s *LogService) notify(entry *domain.DailyLog) {
	if s.notifier != nil && entry.Metric == domain.MetricWeight {
		s.notifier.Enqueue(entry.UserID)
	}
}
