package plan

import (
	"context"
	"errors"
	"log/slog"

	"github.com/claude/fitcoach/internal/sqlite"
)

// ErrNotFound is returned when a requested entity doesn't exist.
var ErrNotFound = errors.New("not found")

// repository contains the repositories for the plan domain aggregates.
type repository struct {
	profile profileRepository
	plans   planRepository
	logs    logRepository
	reports reportRepository
}

// profileRepository handles user profile persistence.
type profileRepository interface {
	Get(ctx context.Context) (UserProfile, error)
	Set(ctx context.Context, profile UserProfile) error
}

// planRepository handles finalized weekly plan persistence.
type planRepository interface {
	ReplaceWeek(ctx context.Context, week int, workout []WorkoutDay, meals []MealDay) error
	GetWeek(ctx context.Context, week int) ([]WorkoutDay, []MealDay, error)
	State(ctx context.Context) (planState, error)
	SetState(ctx context.Context, state planState) error
}

// logRepository handles workout and meal log persistence.
type logRepository interface {
	SetWorkoutLog(ctx context.Context, log WorkoutLog) error
	SetMealLog(ctx context.Context, log MealLog) error
	ListWorkoutLogs(ctx context.Context, week int) ([]WorkoutLog, error)
	ListMealLogs(ctx context.Context, week int) ([]MealLog, error)
}

// reportRepository handles weekly report persistence.
type reportRepository interface {
	Get(ctx context.Context, week int) (string, error)
	Set(ctx context.Context, week int, markdown string) error
}

// planState tracks which week is active and whether it holds demo plans.
type planState struct {
	CurrentWeek int
	DemoPlans   bool
}

// baseRepository provides the shared database handle for sub-repositories.
type baseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newBaseRepository(db *sqlite.Database, logger *slog.Logger) baseRepository {
	return baseRepository{db: db, logger: logger}
}

// repositoryFactory creates repositories with shared dependencies.
type repositoryFactory struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newRepositoryFactory(db *sqlite.Database, logger *slog.Logger) *repositoryFactory {
	return &repositoryFactory{
		db:     db,
		logger: logger,
	}
}

// newRepository creates a new repository aggregate.
func (f *repositoryFactory) newRepository() *repository {
	return &repository{
		profile: newSQLiteProfileRepository(f.db, f.logger),
		plans:   newSQLitePlanRepository(f.db, f.logger),
		logs:    newSQLiteLogRepository(f.db, f.logger),
		reports: newSQLiteReportRepository(f.db, f.logger),
	}
}
