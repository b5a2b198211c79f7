package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/locales"
	"golang.org/x/sync/errgroup"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

// Clock returns the reference instant. Its location decides where days start.
type Clock func() time.Time

type DashboardService struct {
	logRepo     domain.DailyLogRepository
	profileRepo domain.ProfileRepository
	now         Clock
}

func NewDashboardService(logRepo domain.DailyLogRepository, profileRepo domain.ProfileRepository, now Clock) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		logRepo:     logRepo,
		profileRepo: profileRepo,
		now:         now,
	}
}

type DashboardInput struct {
	UserID     string
	Kind       domain.PeriodKind
	Translator locales.Translator
}

// Get recomputes the dashboard from the current clock and log snapshot.
// Nothing is cached: callers invoke it again whenever the range or the logs change.
func (s *DashboardService) Get(ctx context.Context, input DashboardInput) (*domain.Dashboard, error) {
	now := s.now()

	base, err := domain.ComputeBasePeriod(input.Kind, now)
	if err != nil {
		return nil, err
	}

	var (
		profile *domain.Profile
		logs    []domain.DailyLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profileRepo.GetByUserID(gctx, input.UserID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		l, err := s.logRepo.ListByUserID(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("dashboard service: list logs: %w", err)
		}
		logs = l
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	period := domain.EnrichWithLogs(base, logs, now)
	visible := domain.FilterLogs(logs, period)
	formatter := domain.NewRangeFormatter(input.Translator)

	return &domain.Dashboard{
		Period:   period,
		Label:    formatter.Format(period.StartDate, period.EndDate),
		Locale:   formatter.Locale(),
		Logs:     visible,
		Weight:   domain.SummarizeWeight(profile, visible),
		Calories: domain.SummarizeTarget(domain.MetricCalories, profile.DailyCaloriesTarget, visible, period),
		Steps:    domain.SummarizeTarget(domain.MetricSteps, profile.DailyStepsGoal, visible, period),
		Widgets:  domain.QuickLogWidgets(profile),
	}, nil
}

// Period returns only the enriched window, for clients that render their own metrics.
func (s *DashboardService) Period(ctx context.Context, userID string, kind domain.PeriodKind) (domain.Period, error) {
	now := s.now()

	base, err := domain.ComputeBasePeriod(kind, now)
	if err != nil {
		return domain.Period{}, err
	}

	logs, err := s.logRepo.ListByUserID(ctx, userID)
	if err != nil {
		return domain.Period{}, fmt.Errorf("dashboard service: list logs: %w", err)
	}

	return domain.EnrichWithLogs(base, logs, now), nil
}
