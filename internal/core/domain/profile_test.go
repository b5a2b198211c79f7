package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

func TestNewProfile(t *testing.T) {
	t.Run("Success: valid targets", func(t *testing.T) {
		p, err := domain.NewProfile("u1", 82.5, 75, 2200, 10000)

		require.NoError(t, err)
		assert.Equal(t, "u1", p.UserID)
		assert.Equal(t, 1, p.Version)
		assert.False(t, p.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		userID   string
		current  float64
		target   float64
		calories int
		steps    int
	}{
		{"Missing user", "", 80, 75, 2000, 8000},
		{"Weight too low", "u1", 10, 75, 2000, 8000},
		{"Target too high", "u1", 80, 400, 2000, 8000},
		{"Negative calories", "u1", 80, 75, -1, 8000},
		{"Steps above max", "u1", 80, 75, 2000, 200000},
	}

	for _, tt := range tests {
		t.Run("Error: "+tt.name, func(t *testing.T) {
			_, err := domain.NewProfile(tt.userID, tt.current, tt.target, tt.calories, tt.steps)
			assert.ErrorIs(t, err, domain.ErrInvalidProfile)
		})
	}
}

func TestProfile_DefaultFor(t *testing.T) {
	p := &domain.Profile{CurrentWeight: 80, DailyCaloriesTarget: 2100, DailyStepsGoal: 9000}

	assert.Equal(t, 80.0, p.DefaultFor(domain.MetricWeight))
	assert.Equal(t, 2100.0, p.DefaultFor(domain.MetricCalories))
	assert.Equal(t, 9000.0, p.DefaultFor(domain.MetricSteps))
	assert.Equal(t, 0.0, p.DefaultFor("water"))
}
