package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/services"
)

func TestLogService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Weight log notifies the worker", func(t *testing.T) {
		repo := new(MockLogRepo)
		notifier := &recordingNotifier{}
		svc := services.NewLogService(repo, notifier)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.DailyLog")).Return(nil)

		input := services.CreateLogInput{
			UserID: "u1",
			Date:   time.Date(2024, 3, 6, 21, 0, 0, 0, time.UTC),
			Metric: domain.MetricWeight,
			Value:  79.4,
			Notes:  "after dinner",
		}

		entry, err := svc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, utcDay(2024, 3, 6), entry.Date)
		assert.Equal(t, "after dinner", entry.Notes)
		assert.Equal(t, []string{"u1"}, notifier.calls())
		repo.AssertExpectations(t)
	})

	t.Run("Success: Steps log does not notify", func(t *testing.T) {
		repo := new(MockLogRepo)
		notifier := &recordingNotifier{}
		svc := services.NewLogService(repo, notifier)

		repo.On("Create", ctx, mock.Anything).Return(nil)

		_, err := svc.Create(ctx, services.CreateLogInput{UserID: "u1", Date: time.Now(), Metric: domain.MetricSteps, Value: 4000})

		require.NoError(t, err)
		assert.Empty(t, notifier.calls())
	})

	t.Run("Fail: Out of range value never reaches the repo", func(t *testing.T) {
		repo := new(MockLogRepo)
		svc := services.NewLogService(repo, nil)

		_, err := svc.Create(ctx, services.CreateLogInput{UserID: "u1", Date: time.Now(), Metric: domain.MetricCalories, Value: 20000})

		assert.ErrorIs(t, err, domain.ErrValueOutOfRange)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Unknown metric", func(t *testing.T) {
		svc := services.NewLogService(new(MockLogRepo), nil)

		_, err := svc.Create(ctx, services.CreateLogInput{UserID: "u1", Date: time.Now(), Metric: "water", Value: 1})

		assert.ErrorIs(t, err, domain.ErrInvalidMetric)
	})
}

func TestLogService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.DailyLog {
		e := domain.NewDailyLog("owner", utcDay(2024, 3, 6), domain.MetricCalories, 1800)
		e.ID = "log-1"
		e.Version = 2
		return e
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockLogRepo)
		svc := services.NewLogService(repo, nil)

		repo.On("GetByID", ctx, "log-1").Return(existing(), nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.DailyLog")).Return(nil)

		updated, err := svc.Update(ctx, services.UpdateLogInput{ID: "log-1", UserID: "owner", Value: 2100, Version: 2})

		require.NoError(t, err)
		assert.Equal(t, 2100.0, updated.Value)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Stale version", func(t *testing.T) {
		repo := new(MockLogRepo)
		svc := services.NewLogService(repo, nil)

		repo.On("GetByID", ctx, "log-1").Return(existing(), nil)

		_, err := svc.Update(ctx, services.UpdateLogInput{ID: "log-1", UserID: "owner", Value: 2100, Version: 1})

		assert.ErrorIs(t, err, domain.ErrLogConflict)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Other user's log", func(t *testing.T) {
		repo := new(MockLogRepo)
		svc := services.NewLogService(repo, nil)

		repo.On("GetByID", ctx, "log-1").Return(existing(), nil)

		_, err := svc.Update(ctx, services.UpdateLogInput{ID: "log-1", UserID: "intruder", Value: 2100})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestLogService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Deleting a weight log notifies", func(t *testing.T) {
		repo := new(MockLogRepo)
		notifier := &recordingNotifier{}
		svc := services.NewLogService(repo, notifier)

		entry := domain.NewDailyLog("owner", utcDay(2024, 3, 6), domain.MetricWeight, 80)
		entry.ID = "log-9"
		repo.On("GetByID", ctx, "log-9").Return(entry, nil)
		repo.On("Delete", ctx, "log-9", "owner").Return(nil)

		require.NoError(t, svc.Delete(ctx, "log-9", "owner"))
		assert.Equal(t, []string{"owner"}, notifier.calls())
	})

	t.Run("Fail: Not found propagates", func(t *testing.T) {
		repo := new(MockLogRepo)
		svc := services.NewLogService(repo, nil)

		repo.On("GetByID", ctx, "missing").Return(nil, domain.ErrLogNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, "missing", "owner"), domain.ErrLogNotFound)
	})
}

func TestLogService_ListAndDelta(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLogRepo)
	svc := services.NewLogService(repo, nil)

	from := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 8, 0, 0, 0, time.UTC)
	repo.On("ListByUserIDAndDateRange", ctx, "u1", utcDay(2024, 3, 1), utcDay(2024, 3, 31)).Return([]domain.DailyLog{{ID: "a"}}, nil)

	list, err := svc.List(ctx, "u1", from, to)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	since := time.Now().Add(-time.Hour)
	dbErr := errors.New("db down")
	repo.On("GetChanges", ctx, "u1", since).Return(nil, dbErr)

	_, err = svc.GetDelta(ctx, "u1", since)
	assert.ErrorIs(t, err, dbErr)
}
