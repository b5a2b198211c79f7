package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile data")
	ErrProfileConflict = errors.New("profile version conflict")
)

var profileValidator = validator.New()

// Profile holds the targets the dashboard measures logs against.
type Profile struct {
	UserID              string    `json:"user_id" db:"user_id" validate:"required"`
	CurrentWeight       float64   `json:"current_weight" db:"current_weight" validate:"gte=30,lte=300"`
	TargetWeight        float64   `json:"target_weight" db:"target_weight" validate:"gte=30,lte=300"`
	DailyCaloriesTarget int       `json:"daily_calories_target" db:"daily_calories_target" validate:"gte=0,lte=10000"`
	DailyStepsGoal      int       `json:"daily_steps_goal" db:"daily_steps_goal" validate:"gte=0,lte=100000"`
	Version             int       `json:"version" db:"version"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

func NewProfile(userID string, currentWeight, targetWeight float64, calories, steps int) (*Profile, error) {
	now := time.Now().UTC()
	p := &Profile{
		UserID:              userID,
		CurrentWeight:       currentWeight,
		TargetWeight:        targetWeight,
		DailyCaloriesTarget: calories,
		DailyStepsGoal:      steps,
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) Validate() error {
	if err := profileValidator.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed on %s=%s", ErrInvalidProfile, fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}

// DefaultFor returns the value a quick-log widget should be prefilled with.
func (p *Profile) DefaultFor(m Metric) float64 {
	switch m {
	case MetricWeight:
		return p.CurrentWeight
	case MetricCalories:
		return float64(p.DailyCaloriesTarget)
	case MetricSteps:
		return float64(p.DailyStepsGoal)
	}
	return 0
}
