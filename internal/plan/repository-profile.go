package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/claude/fitcoach/internal/sqlite"
)

// sqliteProfileRepository implements profileRepository.
type sqliteProfileRepository struct {
	baseRepository
}

func newSQLiteProfileRepository(db *sqlite.Database, logger *slog.Logger) *sqliteProfileRepository {
	return &sqliteProfileRepository{
		baseRepository: newBaseRepository(db, logger),
	}
}

// Get retrieves the stored profile. ErrNotFound means onboarding has not
// completed yet.
func (r *sqliteProfileRepository) Get(ctx context.Context) (UserProfile, error) {
	var (
		profile             UserProfile
		injuryDetails       sql.NullString
		restDaysCSV         string
		onboardingCompleted bool
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT name, age, gender, height_cm, weight_kg, experience, goal, diet_type,
		       injuries_has_issues, injuries_details, training_days_per_week, rest_days,
		       training_location, meals_per_day, sleep_hours, daily_movement,
		       onboarding_completed
		FROM profile
		WHERE id = 1`).Scan(
		&profile.Name,
		&profile.Age,
		&profile.Gender,
		&profile.HeightCm,
		&profile.WeightKg,
		&profile.Experience,
		&profile.Goal,
		&profile.DietType,
		&profile.Injuries.HasIssues,
		&injuryDetails,
		&profile.TrainingDaysPerWeek,
		&restDaysCSV,
		&profile.TrainingLocation,
		&profile.MealsPerDay,
		&profile.SleepHours,
		&profile.DailyMovement,
		&onboardingCompleted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return UserProfile{}, ErrNotFound
	}
	if err != nil {
		return UserProfile{}, fmt.Errorf("query profile: %w", err)
	}
	if !onboardingCompleted {
		return UserProfile{}, ErrNotFound
	}

	if injuryDetails.Valid {
		profile.Injuries.Details = &injuryDetails.String
	}
	profile.RestDays = parseRestDays(restDaysCSV)

	return profile, nil
}

// Set saves the profile and marks onboarding completed.
func (r *sqliteProfileRepository) Set(ctx context.Context, profile UserProfile) error {
	var injuryDetails sql.NullString
	if profile.Injuries.Details != nil {
		injuryDetails = sql.NullString{String: *profile.Injuries.Details, Valid: true}
	}

	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO profile (
			id, name, age, gender, height_cm, weight_kg, experience, goal, diet_type,
			injuries_has_issues, injuries_details, training_days_per_week, rest_days,
			training_location, meals_per_day, sleep_hours, daily_movement,
			onboarding_completed, updated_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, strftime('%Y-%m-%dT%H:%M:%fZ'))
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			gender = excluded.gender,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			experience = excluded.experience,
			goal = excluded.goal,
			diet_type = excluded.diet_type,
			injuries_has_issues = excluded.injuries_has_issues,
			injuries_details = excluded.injuries_details,
			training_days_per_week = excluded.training_days_per_week,
			rest_days = excluded.rest_days,
			training_location = excluded.training_location,
			meals_per_day = excluded.meals_per_day,
			sleep_hours = excluded.sleep_hours,
			daily_movement = excluded.daily_movement,
			onboarding_completed = 1,
			updated_at = excluded.updated_at`,
		profile.Name,
		profile.Age,
		profile.Gender,
		profile.HeightCm,
		profile.WeightKg,
		profile.Experience,
		profile.Goal,
		profile.DietType,
		profile.Injuries.HasIssues,
		injuryDetails,
		profile.TrainingDaysPerWeek,
		formatRestDays(profile.RestDays),
		string(profile.TrainingLocation),
		profile.MealsPerDay,
		profile.SleepHours,
		string(profile.DailyMovement),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// formatRestDays encodes rest days as a comma-separated list.
func formatRestDays(days []Weekday) string {
	names := make([]string, 0, len(days))
	for _, day := range days {
		names = append(names, string(day))
	}
	return strings.Join(names, ",")
}

// parseRestDays decodes a comma-separated rest-day list, dropping unknown
// names.
func parseRestDays(csv string) []Weekday {
	if csv == "" {
		return nil
	}
	var days []Weekday
	for _, name := range strings.Split(csv, ",") {
		if day, ok := ParseWeekday(name); ok {
			days = append(days, day)
		}
	}
	return days
}
