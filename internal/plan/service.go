package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/fitcoach/internal/sqlite"
)

// ErrGenerationFailed is returned when the plan provider rejects a request
// and no fallback was requested. The demo and calisthenics builders are
// always available as remediation.
var ErrGenerationFailed = errors.New("plan generation failed")

// Generator produces raw plans and weekly reports. The request and response
// contracts are opaque to the service: feedback is passed through unmodified
// and the response is coerced by the adjusters, never validated here.
type Generator interface {
	GeneratePlans(ctx context.Context, profile UserProfile, feedback *Feedback) (RawPlans, error)
	WeeklyReport(ctx context.Context, profile UserProfile, summary WeekSummary) (string, error)
}

// WeekSummary aggregates one week's logs for report generation.
type WeekSummary struct {
	Week               int
	TotalExercises     int
	CompletedExercises int
	SkippedExercises   int
	TooEasyExercises   int
	TooHardExercises   int
	TotalMeals         int
	LoggedMeals        int
	ConsumedMeals      int
	SkipReasons        []string
}

// Service handles the business logic for plan management.
type Service struct {
	repo      *repository
	logger    *slog.Logger
	generator Generator
}

// NewService creates a new plan service. A nil generator disables remote
// generation; demo and calisthenics plans still work.
func NewService(db *sqlite.Database, logger *slog.Logger, generator Generator) *Service {
	factory := newRepositoryFactory(db, logger)
	return &Service{
		repo:      factory.newRepository(),
		logger:    logger,
		generator: generator,
	}
}

// Profile retrieves the stored user profile. ErrNotFound means onboarding
// has not completed yet.
func (s *Service) Profile(ctx context.Context) (UserProfile, error) {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SaveProfile normalizes and saves the user profile.
func (s *Service) SaveProfile(ctx context.Context, profile UserProfile) error {
	if err := s.repo.profile.Set(ctx, profile.WithDefaults()); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GeneratePlans derives and stores fresh plans for the current week. Skip
// reasons logged this week are forwarded to the provider as regeneration
// context. When the provider fails and fallbackToDemo is false the stored
// plans are left untouched and ErrGenerationFailed is returned.
func (s *Service) GeneratePlans(ctx context.Context, fallbackToDemo bool) error {
	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return fmt.Errorf("get plan state: %w", err)
	}
	return s.generateWeek(ctx, state.CurrentWeek, fallbackToDemo)
}

// StartNextWeek closes the current week and generates plans for the next
// one, carrying the finished week's skip reasons as feedback.
func (s *Service) StartNextWeek(ctx context.Context) error {
	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return fmt.Errorf("get plan state: %w", err)
	}
	return s.generateWeek(ctx, state.CurrentWeek+1, true)
}

// generateWeek derives plans for the given week. Feedback always comes from
// the week the user just trained in, which is the current week even when
// generating the next one.
func (s *Service) generateWeek(ctx context.Context, week int, fallbackToDemo bool) error {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	profile = profile.WithDefaults()

	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return fmt.Errorf("get plan state: %w", err)
	}
	logs, err := s.repo.logs.ListWorkoutLogs(ctx, state.CurrentWeek)
	if err != nil {
		return fmt.Errorf("list workout logs: %w", err)
	}
	feedback := collectSkipReasons(logs, state.CurrentWeek)

	workout, meals, demo, err := s.derivePlans(ctx, profile, feedback, fallbackToDemo)
	if err != nil {
		return err
	}

	if err = s.repo.plans.ReplaceWeek(ctx, week, workout, meals); err != nil {
		return fmt.Errorf("replace week %d: %w", week, err)
	}
	if err = s.repo.plans.SetState(ctx, planState{CurrentWeek: week, DemoPlans: demo}); err != nil {
		return fmt.Errorf("set plan state: %w", err)
	}
	return nil
}

// derivePlans runs the full derivation pipeline: source the raw plans,
// adjust them against the profile, attach media. Home training always uses
// the built-in calisthenics blueprint for workouts; only meals come from
// the provider then.
func (s *Service) derivePlans(
	ctx context.Context,
	profile UserProfile,
	feedback *Feedback,
	fallbackToDemo bool,
) (workout []WorkoutDay, meals []MealDay, demo bool, err error) {
	raw, genErr := s.generateRawPlans(ctx, profile, feedback)
	if genErr != nil {
		if !fallbackToDemo {
			return nil, nil, false, fmt.Errorf("%w: %w", ErrGenerationFailed, genErr)
		}
		s.logger.LogAttrs(ctx, slog.LevelWarn, "plan generation failed, using demo plans",
			slog.Any("error", genErr))
		raw = RawPlans{Workout: demoWorkoutPlan(), Meals: demoMealPlan()}
		demo = true
	}

	if profile.TrainingLocation == LocationHome {
		workout = buildCalisthenicsPlan(profile)
	} else {
		workout = adjustWorkoutPlan(mapWorkoutDays(raw.Workout), profile)
	}
	meals = adjustMealPlan(mapMealDays(raw.Meals), profile)

	return attachWorkoutMedia(workout), attachMealMedia(meals), demo, nil
}

func (s *Service) generateRawPlans(
	ctx context.Context,
	profile UserProfile,
	feedback *Feedback,
) (RawPlans, error) {
	if s.generator == nil {
		return RawPlans{}, errors.New("no plan generator configured")
	}
	raw, err := s.generator.GeneratePlans(ctx, profile, feedback)
	if err != nil {
		return RawPlans{}, fmt.Errorf("generate raw plans: %w", err)
	}
	return raw, nil
}

// UseDemoPlans installs the built-in demo plans for the current week without
// touching the provider. Home profiles still get the calisthenics workout.
func (s *Service) UseDemoPlans(ctx context.Context) error {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	profile = profile.WithDefaults()

	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return fmt.Errorf("get plan state: %w", err)
	}

	var workout []WorkoutDay
	if profile.TrainingLocation == LocationHome {
		workout = buildCalisthenicsPlan(profile)
	} else {
		workout = adjustWorkoutPlan(mapWorkoutDays(demoWorkoutPlan()), profile)
	}
	meals := adjustMealPlan(mapMealDays(demoMealPlan()), profile)

	if err = s.repo.plans.ReplaceWeek(ctx, state.CurrentWeek,
		attachWorkoutMedia(workout), attachMealMedia(meals)); err != nil {
		return fmt.Errorf("replace week %d: %w", state.CurrentWeek, err)
	}
	if err = s.repo.plans.SetState(ctx, planState{CurrentWeek: state.CurrentWeek, DemoPlans: true}); err != nil {
		return fmt.Errorf("set plan state: %w", err)
	}
	return nil
}

// WeeklySchedule retrieves the finalized plans for the current week.
// ErrNotFound means no plans have been generated yet.
func (s *Service) WeeklySchedule(ctx context.Context) (Schedule, error) {
	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return Schedule{}, fmt.Errorf("get plan state: %w", err)
	}

	workout, meals, err := s.repo.plans.GetWeek(ctx, state.CurrentWeek)
	if err != nil {
		return Schedule{}, fmt.Errorf("get week %d: %w", state.CurrentWeek, err)
	}

	return Schedule{
		Week:      state.CurrentWeek,
		Workout:   workout,
		Meals:     meals,
		DemoPlans: state.DemoPlans,
	}, nil
}

// LogWorkout records the outcome for an exercise on a day of the current
// week. Logging the same exercise again replaces the earlier outcome.
func (s *Service) LogWorkout(ctx context.Context, day Weekday, exerciseID string, status WorkoutStatus, reason string) error {
	switch status {
	case StatusCompleted, StatusSkipped, StatusTooEasy, StatusTooHard:
	default:
		return fmt.Errorf("invalid workout status %q", status)
	}
	if status != StatusSkipped {
		reason = ""
	}

	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return fmt.Errorf("get plan state: %w", err)
	}

	if err = s.repo.logs.SetWorkoutLog(ctx, WorkoutLog{
		ExerciseID: exerciseID,
		Week:       state.CurrentWeek,
		Day:        day,
		Status:     status,
		Reason:     reason,
		LoggedAt:   time.Now(),
	}); err != nil {
		return fmt.Errorf("log workout: %w", err)
	}
	return nil
}

// LogMeal records whether a meal was consumed on a day of the current week.
func (s *Service) LogMeal(ctx context.Context, day Weekday, mealID string, consumed bool) error {
	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return fmt.Errorf("get plan state: %w", err)
	}

	if err = s.repo.logs.SetMealLog(ctx, MealLog{
		MealID:   mealID,
		Week:     state.CurrentWeek,
		Day:      day,
		Consumed: consumed,
		LoggedAt: time.Now(),
	}); err != nil {
		return fmt.Errorf("log meal: %w", err)
	}
	return nil
}

// WorkoutLogs retrieves the current week's workout logs.
func (s *Service) WorkoutLogs(ctx context.Context) ([]WorkoutLog, error) {
	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return nil, fmt.Errorf("get plan state: %w", err)
	}
	logs, err := s.repo.logs.ListWorkoutLogs(ctx, state.CurrentWeek)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	return logs, nil
}

// MealLogs retrieves the current week's meal logs.
func (s *Service) MealLogs(ctx context.Context) ([]MealLog, error) {
	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return nil, fmt.Errorf("get plan state: %w", err)
	}
	logs, err := s.repo.logs.ListMealLogs(ctx, state.CurrentWeek)
	if err != nil {
		return nil, fmt.Errorf("list meal logs: %w", err)
	}
	return logs, nil
}

// GenerateWeeklyReport summarizes the current week's logs, asks the provider
// for a report, stores it, and returns the markdown.
func (s *Service) GenerateWeeklyReport(ctx context.Context) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("%w: no report generator configured", ErrGenerationFailed)
	}

	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("get profile: %w", err)
	}
	profile = profile.WithDefaults()

	summary, err := s.summarizeCurrentWeek(ctx)
	if err != nil {
		return "", err
	}

	markdown, err := s.generator.WeeklyReport(ctx, profile, summary)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if err = s.repo.reports.Set(ctx, summary.Week, markdown); err != nil {
		return "", fmt.Errorf("save report for week %d: %w", summary.Week, err)
	}
	return markdown, nil
}

// Report retrieves the stored report markdown for a week.
func (s *Service) Report(ctx context.Context, week int) (string, error) {
	markdown, err := s.repo.reports.Get(ctx, week)
	if err != nil {
		return "", fmt.Errorf("get report for week %d: %w", week, err)
	}
	return markdown, nil
}

// summarizeCurrentWeek counts outcomes across the current week's plans and
// logs.
func (s *Service) summarizeCurrentWeek(ctx context.Context) (WeekSummary, error) {
	state, err := s.repo.plans.State(ctx)
	if err != nil {
		return WeekSummary{}, fmt.Errorf("get plan state: %w", err)
	}

	summary := WeekSummary{Week: state.CurrentWeek}

	workout, meals, err := s.repo.plans.GetWeek(ctx, state.CurrentWeek)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return WeekSummary{}, fmt.Errorf("get week %d: %w", state.CurrentWeek, err)
	}
	for _, day := range workout {
		summary.TotalExercises += len(day.Exercises)
	}
	for _, day := range meals {
		summary.TotalMeals += len(day.Meals)
	}

	workoutLogs, err := s.repo.logs.ListWorkoutLogs(ctx, state.CurrentWeek)
	if err != nil {
		return WeekSummary{}, fmt.Errorf("list workout logs: %w", err)
	}
	for _, log := range workoutLogs {
		switch log.Status {
		case StatusCompleted:
			summary.CompletedExercises++
		case StatusSkipped:
			summary.SkippedExercises++
		case StatusTooEasy:
			summary.TooEasyExercises++
		case StatusTooHard:
			summary.TooHardExercises++
		}
	}
	if feedback := collectSkipReasons(workoutLogs, state.CurrentWeek); feedback != nil {
		summary.SkipReasons = feedback.SkipReasons
	}

	mealLogs, err := s.repo.logs.ListMealLogs(ctx, state.CurrentWeek)
	if err != nil {
		return WeekSummary{}, fmt.Errorf("list meal logs: %w", err)
	}
	summary.LoggedMeals = len(mealLogs)
	for _, log := range mealLogs {
		if log.Consumed {
			summary.ConsumedMeals++
		}
	}

	return summary, nil
}
