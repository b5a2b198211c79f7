package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

var _ domain.DailyLogRepository = (*PostgresLogRepository)(nil)

type PostgresLogRepository struct {
	db *sqlx.DB
}

func NewPostgresLogRepository(db *sqlx.DB) *PostgresLogRepository {
	return &PostgresLogRepository{db: db}
}

func (r *PostgresLogRepository) Create(ctx context.Context, entry *domain.DailyLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO daily_logs (
			id, user_id, log_date, metric, value, notes,
			version, created_at, updated_at, deleted_at
		) VALUES (
			:id, :user_id, :log_date, :metric, :value, :notes,
			:version, :created_at, :updated_at, :deleted_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user does not exist", domain.ErrInvalidLog)
		}
		if isUniqueViolation(err) {
			return domain.ErrLogConflict
		}
		return err
	}
	return nil
}

func (r *PostgresLogRepository) GetByID(ctx context.Context, id string) (*domain.DailyLog, error) {
	var entry domain.DailyLog
	query := `SELECT * FROM daily_logs WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &entry, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLogNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresLogRepository) ListByUserID(ctx context.Context, userID string) ([]domain.DailyLog, error) {
	logs := []domain.DailyLog{}

	query := `
		SELECT * FROM daily_logs
		WHERE user_id = $1
		  AND deleted_at IS NULL
		ORDER BY log_date ASC, created_at ASC`

	if err := r.db.SelectContext(ctx, &logs, query, userID); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *PostgresLogRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyLog, error) {
	logs := []domain.DailyLog{}

	query := `
		SELECT * FROM daily_logs
		WHERE user_id = $1
		  AND log_date >= $2
		  AND log_date <= $3
		  AND deleted_at IS NULL
		ORDER BY log_date ASC, created_at ASC`

	if err := r.db.SelectContext(ctx, &logs, query, userID, from, to); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *PostgresLogRepository) Update(ctx context.Context, entry *domain.DailyLog) error {
	entry.Version++
	entry.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE daily_logs
		SET value = :value,
		    notes = :notes,
		    version = :version,
		    updated_at = :updated_at
		WHERE id = :id
		  AND version = :version - 1
		  AND deleted_at IS NULL`

	result, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		entry.Version--
		exists, _ := r.exists(ctx, entry.ID)
		if !exists {
			return domain.ErrLogNotFound
		}
		return domain.ErrLogConflict
	}

	return nil
}

func (r *PostgresLogRepository) Delete(ctx context.Context, id string, userID string) error {
	now := time.Now().UTC()

	query := `
		UPDATE daily_logs
		SET deleted_at = $1,
		    updated_at = $1,
		    version = version + 1
		WHERE id = $2
		  AND user_id = $3
		  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, now, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}

	return nil
}

func (r *PostgresLogRepository) GetChanges(ctx context.Context, userID string, since time.Time) ([]domain.DailyLog, error) {
	logs := []domain.DailyLog{}

	query := `
		SELECT * FROM daily_logs
		WHERE user_id = $1
		  AND updated_at > $2
		ORDER BY updated_at ASC`

	if err := r.db.SelectContext(ctx, &logs, query, userID, since); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *PostgresLogRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT count(*) FROM daily_logs WHERE id = $1 AND deleted_at IS NULL", id)
	return count > 0, err
}
