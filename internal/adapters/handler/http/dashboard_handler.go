package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-vitals/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/services"
)

type DashboardHandler struct {
	svc     *services.DashboardService
	locales *LocaleResolver
}

func NewDashboardHandler(svc *services.DashboardService, locales *LocaleResolver) *DashboardHandler {
	return &DashboardHandler{
		svc:     svc,
		locales: locales,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", h.Get)
		dashboard.GET("/period", h.Period)
	}
}

// Get godoc
// @Summary Dashboard for the current week or month
// @Tags dashboard
// @Produce json
// @Param range query string false "week (default) or month"
// @Param Accept-Language header string false "Locale for the range label"
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string "Profile not set up yet"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	kind, err := domain.ParsePeriodKind(c.Query("range"))
	if err != nil {
		handleError(c, err)
		return
	}

	input := services.DashboardInput{
		UserID:     userID,
		Kind:       kind,
		Translator: h.locales.Resolve(c.GetHeader("Accept-Language"), middleware.GetUserLocale(c)),
	}

	dashboard, err := h.svc.Get(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// Period godoc
// @Summary Enriched period only
// @Tags dashboard
// @Produce json
// @Param range query string false "week (default) or month"
// @Success 200 {object} domain.Period
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /dashboard/period [get]
func (h *DashboardHandler) Period(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	kind, err := domain.ParsePeriodKind(c.Query("range"))
	if err != nil {
		handleError(c, err)
		return
	}

	period, err := h.svc.Period(c.Request.Context(), userID, kind)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}
