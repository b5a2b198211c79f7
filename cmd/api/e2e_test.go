package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-vitals/internal/config"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Port: "0", Env: "test", Storage: config.StorageMemory, DefaultLocale: "en"},
		DB:        config.DBConfig{Driver: "pgx"},
		JWT:       config.JWTConfig{Secret: "e2e-secret", Issuer: "kanso-vitals-e2e", TTL: time.Hour},
		RateLimit: config.RateLimitConfig{Limit: 1000, Window: time.Minute},
	}
}

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (c *client) call(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func runLifecycle(t *testing.T, cfg *config.Config) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := newApplication(ctx, cfg, time.Now())
	require.NoError(t, err)
	defer app.Close()
	app.worker.Start(ctx)

	c := &client{t: t, router: app.router}
	today := time.Now().Format(domain.DateLayout)

	t.Run("1. Register and login", func(t *testing.T) {
		w := c.call(http.MethodPost, "/api/v1/auth/register", map[string]string{
			"email": "e2e@kanso.app", "password": "PasswordValidissima!", "locale": "en-US",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = c.call(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email": "e2e@kanso.app", "password": "PasswordValidissima!",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)
		c.token = resp.Token
	})

	t.Run("2. Dashboard is locked without a profile", func(t *testing.T) {
		w := c.call(http.MethodGet, "/api/v1/dashboard", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("3. Profile and a weight log", func(t *testing.T) {
		w := c.call(http.MethodPut, "/api/v1/profile", map[string]any{
			"current_weight": 85, "target_weight": 78, "daily_calories_target": 2100, "daily_steps_goal": 9000,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = c.call(http.MethodPost, "/api/v1/logs", map[string]any{"date": today, "metric": "weight", "value": 84.3})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("4. Dashboard reflects today's log", func(t *testing.T) {
		w := c.call(http.MethodGet, "/api/v1/dashboard?range=week", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var d domain.Dashboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
		assert.True(t, d.Period.HasLogToday)
		assert.Equal(t, 1, d.Period.DaysWithLogs)
		assert.Equal(t, 7, d.Period.DaysInPeriod)
		assert.Equal(t, d.Period.DaysLeft, d.Period.RemainingDaysForLogs)
		assert.Len(t, d.Logs, 1)
	})

	t.Run("5. Worker syncs the profile weight", func(t *testing.T) {
		require.Eventually(t, func() bool {
			w := c.call(http.MethodGet, "/api/v1/profile", nil)
			if w.Code != http.StatusOK {
				return false
			}
			var p domain.Profile
			if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
				return false
			}
			return p.CurrentWeight == 84.3
		}, 3*time.Second, 20*time.Millisecond)
	})

	t.Run("6. Health", func(t *testing.T) {
		w := c.call(http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEndToEnd_MemoryStorage(t *testing.T) {
	runLifecycle(t, testConfig())
}

func TestEndToEnd_MemoryStorageWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig()
	cfg.Redis = config.RedisConfig{Enabled: true, Host: mr.Host(), Port: mr.Port()}

	runLifecycle(t, cfg)

	var limited bool
	for _, k := range mr.Keys() {
		if strings.HasPrefix(k, "rate_limit:") {
			limited = true
		}
	}
	assert.True(t, limited, "requests went through the redis rate limiter")
}
