package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-vitals/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-vitals/internal/core/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type upsertProfileRequest struct {
	CurrentWeight       float64 `json:"current_weight" binding:"required"`
	TargetWeight        float64 `json:"target_weight" binding:"required"`
	DailyCaloriesTarget int     `json:"daily_calories_target"`
	DailyStepsGoal      int     `json:"daily_steps_goal"`
	Version             int     `json:"version"`
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.Get)
	router.PUT("/profile", h.Upsert)
}

// Get godoc
// @Summary Current profile and targets
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Upsert godoc
// @Summary Create or update the profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body upsertProfileRequest true "version is required once the profile exists"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /profile [put]
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.UpsertProfileInput{
		UserID:              userID,
		CurrentWeight:       req.CurrentWeight,
		TargetWeight:        req.TargetWeight,
		DailyCaloriesTarget: req.DailyCaloriesTarget,
		DailyStepsGoal:      req.DailyStepsGoal,
		Version:             req.Version,
	}

	profile, err := h.svc.Upsert(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
