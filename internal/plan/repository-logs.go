package plan

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/fitcoach/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// sqliteLogRepository implements logRepository with last-write-wins upserts.
type sqliteLogRepository struct {
	baseRepository
}

func newSQLiteLogRepository(db *sqlite.Database, logger *slog.Logger) *sqliteLogRepository {
	return &sqliteLogRepository{
		baseRepository: newBaseRepository(db, logger),
	}
}

// SetWorkoutLog records the outcome for an exercise, replacing any earlier
// log for the same (exercise, week, day).
func (r *sqliteLogRepository) SetWorkoutLog(ctx context.Context, log WorkoutLog) error {
	var reason sql.NullString
	if log.Reason != "" {
		reason = sql.NullString{String: log.Reason, Valid: true}
	}

	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workout_logs (exercise_id, week, day, status, reason, logged_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (exercise_id, week, day) DO UPDATE SET
			status = excluded.status,
			reason = excluded.reason,
			logged_at = excluded.logged_at`,
		log.ExerciseID, log.Week, string(log.Day), string(log.Status), reason,
		log.LoggedAt.UTC().Format(timestampFormat))
	if err != nil {
		return fmt.Errorf("save workout log: %w", err)
	}
	return nil
}

// SetMealLog records whether a meal was consumed, replacing any earlier log
// for the same (meal, week, day).
func (r *sqliteLogRepository) SetMealLog(ctx context.Context, log MealLog) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO meal_logs (meal_id, week, day, consumed, logged_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (meal_id, week, day) DO UPDATE SET
			consumed = excluded.consumed,
			logged_at = excluded.logged_at`,
		log.MealID, log.Week, string(log.Day), log.Consumed,
		log.LoggedAt.UTC().Format(timestampFormat))
	if err != nil {
		return fmt.Errorf("save meal log: %w", err)
	}
	return nil
}

// ListWorkoutLogs retrieves a week's workout logs in logging order.
func (r *sqliteLogRepository) ListWorkoutLogs(ctx context.Context, week int) ([]WorkoutLog, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT exercise_id, week, day, status, reason, logged_at
		FROM workout_logs
		WHERE week = ?
		ORDER BY logged_at`, week)
	if err != nil {
		return nil, fmt.Errorf("query workout logs: %w", err)
	}
	defer rows.Close()

	var logs []WorkoutLog
	for rows.Next() {
		var (
			log         WorkoutLog
			reason      sql.NullString
			loggedAtStr string
		)
		if err = rows.Scan(&log.ExerciseID, &log.Week, &log.Day, &log.Status, &reason, &loggedAtStr); err != nil {
			return nil, fmt.Errorf("scan workout log: %w", err)
		}
		log.Reason = reason.String
		if log.LoggedAt, err = time.Parse(timestampFormat, loggedAtStr); err != nil {
			return nil, fmt.Errorf("parse logged_at: %w", err)
		}
		logs = append(logs, log)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout log rows: %w", err)
	}
	return logs, nil
}

// ListMealLogs retrieves a week's meal logs in logging order.
func (r *sqliteLogRepository) ListMealLogs(ctx context.Context, week int) ([]MealLog, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT meal_id, week, day, consumed, logged_at
		FROM meal_logs
		WHERE week = ?
		ORDER BY logged_at`, week)
	if err != nil {
		return nil, fmt.Errorf("query meal logs: %w", err)
	}
	defer rows.Close()

	var logs []MealLog
	for rows.Next() {
		var loggedAtStr string
		var log MealLog
		if err = rows.Scan(&log.MealID, &log.Week, &log.Day, &log.Consumed, &loggedAtStr); err != nil {
			return nil, fmt.Errorf("scan meal log: %w", err)
		}
		if log.LoggedAt, err = time.Parse(timestampFormat, loggedAtStr); err != nil {
			return nil, fmt.Errorf("parse logged_at: %w", err)
		}
		logs = append(logs, log)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal log rows: %w", err)
	}
	return logs, nil
}
