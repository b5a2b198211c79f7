package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/logs/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for _, path := range []string{"/logs/a", "/logs/b", "/missing"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/logs/:id", "GET", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}
