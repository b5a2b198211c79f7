package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-vitals/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/services"
)

const defaultListDays = 30

type LogHandler struct {
	svc *services.LogService
}

func NewLogHandler(svc *services.LogService) *LogHandler {
	return &LogHandler{
		svc: svc,
	}
}

type createLogRequest struct {
	Date   string   `json:"date" binding:"required"`
	Metric string   `json:"metric" binding:"required,oneof=weight calories steps"`
	Value  *float64 `json:"value" binding:"required"`
	Notes  string   `json:"notes" binding:"max=500"`
}

type updateLogRequest struct {
	Value   *float64 `json:"value" binding:"required"`
	Notes   string   `json:"notes" binding:"max=500"`
	Version int      `json:"version" binding:"required,min=1"`
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.POST("", h.Create)
		logs.GET("", h.List)
		logs.GET("/sync", h.Sync)
		logs.GET("/metrics", h.Metrics)
		logs.GET("/:id", h.Get)
		logs.PUT("/:id", h.Update)
		logs.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Quick-log a metric for a day
// @Tags logs
// @Accept json
// @Produce json
// @Param request body createLogRequest true "date is YYYY-MM-DD"
// @Success 201 {object} domain.DailyLog
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /logs [post]
func (h *LogHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}

	input := services.CreateLogInput{
		UserID: userID,
		Date:   date,
		Metric: domain.Metric(req.Metric),
		Value:  *req.Value,
		Notes:  req.Notes,
	}

	entry, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Get godoc
// @Summary Read a single log
// @Tags logs
// @Produce json
// @Param id path string true "Log ID"
// @Success 200 {object} domain.DailyLog
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /logs/{id} [get]
func (h *LogHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	entry, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Update godoc
// @Summary Change the value or notes of a log
// @Tags logs
// @Accept json
// @Produce json
// @Param id path string true "Log ID"
// @Param request body updateLogRequest true "version must match the stored one"
// @Success 200 {object} domain.DailyLog
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /logs/{id} [put]
func (h *LogHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.UpdateLogInput{
		ID:      c.Param("id"),
		UserID:  userID,
		Value:   *req.Value,
		Notes:   req.Notes,
		Version: req.Version,
	}

	entry, err := h.svc.Update(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary Soft-delete a log
// @Tags logs
// @Param id path string true "Log ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /logs/{id} [delete]
func (h *LogHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary Logs between two days, inclusive
// @Tags logs
// @Produce json
// @Param from query string false "YYYY-MM-DD, defaults to 30 days ago"
// @Param to query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} domain.DailyLog
// @Security BearerAuth
// @Router /logs [get]
func (h *LogHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -defaultListDays)

	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date (use YYYY-MM-DD)"})
			return
		}
		to = parsed
	}
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date (use YYYY-MM-DD)"})
			return
		}
		from = parsed
	}

	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must not be after 'to'"})
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Sync godoc
// @Summary Changes since a timestamp, including soft deletes
// @Tags logs
// @Produce json
// @Param since query string false "RFC3339 timestamp"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /logs/sync [get]
func (h *LogHandler) Sync(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var since time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use RFC3339)"})
			return
		}
		since = parsed
	}

	changes, err := h.svc.GetDelta(c.Request.Context(), userID, since)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"changes":   changes,
		"timestamp": time.Now().UTC(),
	})
}

// Metrics godoc
// @Summary Quick-log widget constraints
// @Tags logs
// @Produce json
// @Success 200 {array} domain.MetricSpec
// @Security BearerAuth
// @Router /logs/metrics [get]
func (h *LogHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, domain.MetricSpecs())
}
