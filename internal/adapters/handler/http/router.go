package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/kanso-vitals/docs"
	"github.com/comitanigiacomo/kanso-vitals/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	AuthHandler      *AuthHandler
	DashboardHandler *DashboardHandler
	LogHandler       *LogHandler
	ProfileHandler   *ProfileHandler
	TokenValidator   middleware.TokenValidator

	// DB and Redis are optional; a nil value is reported as "disabled" by /health.
	DB    *sqlx.DB
	Redis *redis.Client

	Registry   *prometheus.Registry
	RateLimit  int
	RateWindow time.Duration
	StartTime  time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"POST", "GET", "OPTIONS", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if deps.Registry != nil {
		router.Use(middleware.NewMetrics(deps.Registry).Middleware())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	if deps.Redis != nil && deps.RateLimit > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateWindow))
	}

	router.GET("/health", healthHandler(deps))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenValidator))
	{
		deps.DashboardHandler.RegisterRoutes(protected)
		deps.LogHandler.RegisterRoutes(protected)
		deps.ProfileHandler.RegisterRoutes(protected)
	}

	return router
}

func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "disabled"
		if deps.DB != nil {
			dbStatus = "connected"
			if err := deps.DB.PingContext(ctx); err != nil {
				dbStatus = "unreachable"
			}
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(ctx).Err(); err != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := http.StatusOK
		status := "ok"
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
			status = "degraded"
		}

		c.JSON(statusCode, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	}
}
