package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

var badRequestErrors = []error{
	domain.ErrInvalidPeriodKind,
	domain.ErrInvalidLog,
	domain.ErrInvalidMetric,
	domain.ErrValueOutOfRange,
	domain.ErrLogDateRequired,
	domain.ErrInvalidProfile,
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})

	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "profile not found",
			"message": "set up your profile to unlock the dashboard",
		})

	case errors.Is(err, domain.ErrLogNotFound) || errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrLogConflict) || errors.Is(err, domain.ErrProfileConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "version conflict",
			"message": "data has been modified elsewhere, please sync",
		})

	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func isBadRequest(err error) bool {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
