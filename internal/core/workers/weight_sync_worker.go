package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
}

type LogRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]domain.DailyLog, error)
}

type WeightSyncJob struct {
	UserID string
}

// WeightSyncWorker keeps Profile.CurrentWeight equal to the most recent weight log.
type WeightSyncWorker struct {
	profileRepo ProfileRepository
	logRepo     LogRepository
	jobs        chan WeightSyncJob
}

func NewWeightSyncWorker(pRepo ProfileRepository, lRepo LogRepository) *WeightSyncWorker {
	return &WeightSyncWorker{
		profileRepo: pRepo,
		logRepo:     lRepo,
		jobs:        make(chan WeightSyncJob, 100),
	}
}

func (w *WeightSyncWorker) Start(ctx context.Context) {
	go func() {
		log.Println("[WORKER] Weight sync worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WORKER] Weight sync worker shutting down...")
				return
			}
		}
	}()
}

// Enqueue never blocks; a full queue drops the job.
func (w *WeightSyncWorker) Enqueue(userID string) {
	select {
	case w.jobs <- WeightSyncJob{UserID: userID}:
	default:
		log.Printf("[WORKER] Queue full! Dropping weight sync for user %s", userID)
	}
}

func (w *WeightSyncWorker) processJob(ctx context.Context, job WeightSyncJob) {
	profile, err := w.profileRepo.GetByUserID(ctx, job.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			log.Printf("[WORKER] Error fetching profile %s: %v", job.UserID, err)
		}
		return
	}

	logs, err := w.logRepo.ListByUserID(ctx, job.UserID)
	if err != nil {
		log.Printf("[WORKER] Error fetching logs for %s: %v", job.UserID, err)
		return
	}

	latest, ok := latestWeight(logs)
	if !ok || latest == profile.CurrentWeight {
		return
	}

	profile.CurrentWeight = latest
	profile.Version++
	profile.UpdatedAt = time.Now().UTC()

	if err := w.profileRepo.Upsert(ctx, profile); err != nil {
		log.Printf("[WORKER] Failed to update weight for %s: %v", job.UserID, err)
		return
	}
	log.Printf("[WORKER] Current weight updated for %s: %.1f", job.UserID, latest)
}

// latestWeight picks the weight log with the latest day, breaking ties by creation time.
func latestWeight(logs []domain.DailyLog) (float64, bool) {
	var best *domain.DailyLog
	for i := range logs {
		l := &logs[i]
		if l.Metric != domain.MetricWeight || l.Date.IsZero() || l.DeletedAt != nil {
			continue
		}
		if best == nil ||
			l.Date.After(best.Date) ||
			(l.Date.Equal(best.Date) && l.CreatedAt.After(best.CreatedAt)) {
			best = l
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Value, true
}
