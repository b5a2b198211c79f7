package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

var _ domain.ProfileRepository = (*PostgresProfileRepository)(nil)

type PostgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert expects the caller to have bumped Version; an existing row only accepts Version-1.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, current_weight, target_weight,
			daily_calories_target, daily_steps_goal,
			version, created_at, updated_at
		) VALUES (
			:user_id, :current_weight, :target_weight,
			:daily_calories_target, :daily_steps_goal,
			:version, :created_at, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE
		SET current_weight = EXCLUDED.current_weight,
		    target_weight = EXCLUDED.target_weight,
		    daily_calories_target = EXCLUDED.daily_calories_target,
		    daily_steps_goal = EXCLUDED.daily_steps_goal,
		    version = EXCLUDED.version,
		    updated_at = EXCLUDED.updated_at
		WHERE profiles.version = EXCLUDED.version - 1`

	result, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user does not exist", domain.ErrInvalidProfile)
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileConflict
	}
	return nil
}
