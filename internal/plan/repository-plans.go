package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/claude/fitcoach/internal/sqlite"
)

// sqlitePlanRepository implements planRepository. Workout and meal days are
// stored one row per (week, day) with the exercise and meal lists as JSON
// columns.
type sqlitePlanRepository struct {
	baseRepository
}

func newSQLitePlanRepository(db *sqlite.Database, logger *slog.Logger) *sqlitePlanRepository {
	return &sqlitePlanRepository{
		baseRepository: newBaseRepository(db, logger),
	}
}

// ReplaceWeek atomically replaces the stored plans for a week.
func (r *sqlitePlanRepository) ReplaceWeek(
	ctx context.Context,
	week int,
	workout []WorkoutDay,
	meals []MealDay,
) error {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		err = tx.Rollback()
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", err))
		}
	}(tx)

	if _, err = tx.ExecContext(ctx, `DELETE FROM workout_days WHERE week = ?`, week); err != nil {
		return fmt.Errorf("delete workout days: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM meal_days WHERE week = ?`, week); err != nil {
		return fmt.Errorf("delete meal days: %w", err)
	}

	for _, day := range workout {
		var exercisesJSON []byte
		if exercisesJSON, err = json.Marshal(day.Exercises); err != nil {
			return fmt.Errorf("marshal exercises for %s: %w", day.Day, err)
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO workout_days (week, day, is_rest_day, exercises_json)
			VALUES (?, ?, ?, ?)`,
			week, string(day.Day), day.IsRestDay, string(exercisesJSON)); err != nil {
			return fmt.Errorf("insert workout day %s: %w", day.Day, err)
		}
	}

	for _, day := range meals {
		var mealsJSON []byte
		if mealsJSON, err = json.Marshal(day.Meals); err != nil {
			return fmt.Errorf("marshal meals for %s: %w", day.Day, err)
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO meal_days (week, day, meals_json)
			VALUES (?, ?, ?)`,
			week, string(day.Day), string(mealsJSON)); err != nil {
			return fmt.Errorf("insert meal day %s: %w", day.Day, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetWeek retrieves the stored plans for a week in Mon..Sun order.
func (r *sqlitePlanRepository) GetWeek(ctx context.Context, week int) ([]WorkoutDay, []MealDay, error) {
	workout, err := r.getWorkoutDays(ctx, week)
	if err != nil {
		return nil, nil, err
	}
	if len(workout) == 0 {
		return nil, nil, ErrNotFound
	}

	meals, err := r.getMealDays(ctx, week)
	if err != nil {
		return nil, nil, err
	}

	return sortWorkoutWeek(workout), sortMealWeek(meals), nil
}

func (r *sqlitePlanRepository) getWorkoutDays(ctx context.Context, week int) ([]WorkoutDay, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT day, is_rest_day, exercises_json
		FROM workout_days
		WHERE week = ?`, week)
	if err != nil {
		return nil, fmt.Errorf("query workout days: %w", err)
	}
	defer rows.Close()

	var days []WorkoutDay
	for rows.Next() {
		var (
			day           WorkoutDay
			exercisesJSON string
		)
		if err = rows.Scan(&day.Day, &day.IsRestDay, &exercisesJSON); err != nil {
			return nil, fmt.Errorf("scan workout day: %w", err)
		}
		if err = json.Unmarshal([]byte(exercisesJSON), &day.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises for %s: %w", day.Day, err)
		}
		days = append(days, day)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout day rows: %w", err)
	}
	return days, nil
}

func (r *sqlitePlanRepository) getMealDays(ctx context.Context, week int) ([]MealDay, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT day, meals_json
		FROM meal_days
		WHERE week = ?`, week)
	if err != nil {
		return nil, fmt.Errorf("query meal days: %w", err)
	}
	defer rows.Close()

	var days []MealDay
	for rows.Next() {
		var (
			day       MealDay
			mealsJSON string
		)
		if err = rows.Scan(&day.Day, &mealsJSON); err != nil {
			return nil, fmt.Errorf("scan meal day: %w", err)
		}
		if err = json.Unmarshal([]byte(mealsJSON), &day.Meals); err != nil {
			return nil, fmt.Errorf("unmarshal meals for %s: %w", day.Day, err)
		}
		days = append(days, day)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal day rows: %w", err)
	}
	return days, nil
}

// State retrieves the plan state, defaulting to week 1 when nothing is
// stored yet.
func (r *sqlitePlanRepository) State(ctx context.Context) (planState, error) {
	var state planState
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT current_week, demo_plans
		FROM plan_state
		WHERE id = 1`).Scan(&state.CurrentWeek, &state.DemoPlans)
	if errors.Is(err, sql.ErrNoRows) {
		return planState{CurrentWeek: 1, DemoPlans: false}, nil
	}
	if err != nil {
		return planState{}, fmt.Errorf("query plan state: %w", err)
	}
	return state, nil
}

// SetState saves the plan state.
func (r *sqlitePlanRepository) SetState(ctx context.Context, state planState) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO plan_state (id, current_week, demo_plans, updated_at)
		VALUES (1, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ'))
		ON CONFLICT (id) DO UPDATE SET
			current_week = excluded.current_week,
			demo_plans = excluded.demo_plans,
			updated_at = excluded.updated_at`,
		state.CurrentWeek, state.DemoPlans)
	if err != nil {
		return fmt.Errorf("save plan state: %w", err)
	}
	return nil
}

// sortWorkoutWeek orders days Mon..Sun regardless of row order.
func sortWorkoutWeek(days []WorkoutDay) []WorkoutDay {
	byDay := make(map[Weekday]WorkoutDay, len(days))
	for _, day := range days {
		byDay[day.Day] = day
	}
	sorted := make([]WorkoutDay, 0, len(days))
	for _, name := range weekOrder {
		if day, ok := byDay[name]; ok {
			sorted = append(sorted, day)
		}
	}
	return sorted
}

// sortMealWeek orders days Mon..Sun regardless of row order.
func sortMealWeek(days []MealDay) []MealDay {
	byDay := make(map[Weekday]MealDay, len(days))
	for _, day := range days {
		byDay[day.Day] = day
	}
	sorted := make([]MealDay, 0, len(days))
	for _, name := range weekOrder {
		if day, ok := byDay[name]; ok {
			sorted = append(sorted, day)
		}
	}
	return sorted
}
