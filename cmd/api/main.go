package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-vitals/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-vitals/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-vitals/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-vitals/internal/config"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/services"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/workers"
)

type application struct {
	router *gin.Engine
	worker *workers.WeightSyncWorker
	db     *sqlx.DB
	redis  *redis.Client
}

func main() {
	startTime := time.Now()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, startTime)
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}
	defer app.Close()

	app.worker.Start(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      app.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Kanso Vitals running on http://localhost:%s (storage=%s)", cfg.App.Port, cfg.App.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
		os.Exit(1)
	}

	log.Println("Server stopped gracefully.")
}

func newApplication(ctx context.Context, cfg *config.Config, startTime time.Time) (*application, error) {
	app := &application{}

	var (
		userRepo    domain.UserRepository
		logRepo     domain.DailyLogRepository
		profileRepo domain.ProfileRepository
	)

	switch cfg.App.Storage {
	case config.StoragePostgres:
		log.Println("Connecting to database...")

		db, err := sqlx.ConnectContext(ctx, cfg.DB.Driver, cfg.DB.DSN())
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		app.db = db

		log.Println("Database connected successfully.")

		userRepo = repository.NewPostgresUserRepository(db.DB)
		logRepo = repository.NewPostgresLogRepository(db)
		profileRepo = repository.NewPostgresProfileRepository(db)
	default:
		log.Println("Using in-memory storage; data is lost on restart.")

		userRepo = repository.NewInMemoryUserRepository()
		logRepo = repository.NewInMemoryLogRepository()
		profileRepo = repository.NewInMemoryProfileRepository()
	}

	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Printf("[CACHE] Redis unavailable, running without cache and rate limiting: %v", err)
		} else {
			app.redis = rdb
			logRepo = repository.NewCachedLogRepository(logRepo, rdb)
			profileRepo = repository.NewCachedProfileRepository(profileRepo, rdb)
		}
	}

	worker := workers.NewWeightSyncWorker(profileRepo, logRepo)
	app.worker = worker

	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL, userRepo)
	authService := services.NewAuthService(userRepo)
	logService := services.NewLogService(logRepo, worker)
	profileService := services.NewProfileService(profileRepo)
	dashboardService := services.NewDashboardService(logRepo, profileRepo, time.Now)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService, tokenService),
		DashboardHandler: adapterHTTP.NewDashboardHandler(dashboardService, adapterHTTP.NewLocaleResolver(cfg.App.DefaultLocale)),
		LogHandler:       adapterHTTP.NewLogHandler(logService),
		ProfileHandler:   adapterHTTP.NewProfileHandler(profileService),
		TokenValidator:   tokenService,
		DB:               app.db,
		Redis:            app.redis,
		Registry:         registry,
		RateLimit:        cfg.RateLimit.Limit,
		RateWindow:       cfg.RateLimit.Window,
		StartTime:        startTime,
	})

	return app, nil
}

func (a *application) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Printf("[CACHE] Failed to close redis: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
}
