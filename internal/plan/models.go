// Package plan implements the personalized plan derivation engine: it turns a
// raw 7-day workout/meal plan and a user profile into a finalized plan that
// honors rest-day, training-day, meal-count, sleep, injury, and activity
// rules.
package plan

import "time"

// Weekday is a three-letter weekday name as used on the wire and in plans.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// weekOrder is the fixed Mon..Sun ordering every finalized plan follows.
//
//nolint:gochecknoglobals // fixed week ordering
var weekOrder = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekOrder returns the fixed Mon..Sun weekday ordering.
func WeekOrder() []Weekday {
	return weekOrder[:]
}

// ParseWeekday maps a weekday name to its canonical value. Unknown names
// report false and are silently ignored by the adjusters.
func ParseWeekday(s string) (Weekday, bool) {
	for _, day := range weekOrder {
		if string(day) == s {
			return day, true
		}
	}
	return "", false
}

// TrainingLocation selects between an externally generated gym plan and the
// built-in calisthenics blueprint.
type TrainingLocation string

const (
	LocationGym  TrainingLocation = "gym"
	LocationHome TrainingLocation = "home"
)

// MovementLevel describes how much the user moves outside training.
type MovementLevel string

const (
	MovementLow    MovementLevel = "low"
	MovementMedium MovementLevel = "medium"
	MovementHigh   MovementLevel = "high"
)

// InjuryStatus records whether workouts need an injury accommodation.
type InjuryStatus struct {
	HasIssues bool    `json:"hasIssues"`
	Details   *string `json:"details"`
}

// UserProfile holds the onboarding answers that drive plan adjustment. It is
// read-only input for the adjusters; only explicit profile edits mutate it.
type UserProfile struct {
	Name                string           `json:"name"`
	Age                 int              `json:"age"`
	Gender              string           `json:"gender"`
	HeightCm            float64          `json:"height"`
	WeightKg            float64          `json:"weight"`
	Experience          string           `json:"experience"`
	Goal                string           `json:"goal"`
	DietType            string           `json:"dietType"`
	Injuries            InjuryStatus     `json:"injuries"`
	TrainingDaysPerWeek int              `json:"trainingDaysPerWeek"`
	RestDays            []Weekday        `json:"restDays"`
	TrainingLocation    TrainingLocation `json:"trainingLocation"`
	MealsPerDay         int              `json:"mealsPerDay"`
	SleepHours          float64          `json:"sleepHours"`
	DailyMovement       MovementLevel    `json:"dailyMovement"`
}

// Exercise is a single exercise within a workout day. Reps holds either a
// single value or a [low, high] range.
type Exercise struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Sets           int      `json:"sets"`
	Reps           []int    `json:"reps"`
	RestSec        int      `json:"restSec"`
	TargetWeightKg *float64 `json:"targetWeightKg,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	VideoURL       string   `json:"videoUrl,omitempty"`
}

// WorkoutDay is one weekday of a finalized workout plan. A rest day carries no
// exercises.
type WorkoutDay struct {
	Day       Weekday    `json:"day"`
	IsRestDay bool       `json:"isRestDay"`
	Exercises []Exercise `json:"exercises"`
}

// MealType categorizes a meal.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Meal is a single meal within a meal day.
type Meal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        MealType `json:"type"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
	Carbs       int      `json:"carbs"`
	Fats        int      `json:"fats"`
	Ingredients []string `json:"ingredients"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// MealDay is one weekday of a finalized meal plan.
type MealDay struct {
	Day   Weekday `json:"day"`
	Meals []Meal  `json:"meals"`
}

// WorkoutStatus is the outcome recorded for an exercise.
type WorkoutStatus string

const (
	StatusCompleted WorkoutStatus = "completed"
	StatusSkipped   WorkoutStatus = "skipped"
	StatusTooEasy   WorkoutStatus = "too_easy"
	StatusTooHard   WorkoutStatus = "too_hard"
)

// WorkoutLog records the outcome for one exercise on one day of one week.
// A new log for the same (exercise, week, day) replaces the prior one.
type WorkoutLog struct {
	ExerciseID string
	Week       int
	Day        Weekday
	Status     WorkoutStatus
	Reason     string
	LoggedAt   time.Time
}

// MealLog records whether a meal was consumed. Same replacement semantics as
// WorkoutLog.
type MealLog struct {
	MealID   string
	Week     int
	Day      Weekday
	Consumed bool
	LoggedAt time.Time
}

// Schedule is the finalized weekly state handed to the UI layer.
type Schedule struct {
	Week      int
	Workout   []WorkoutDay
	Meals     []MealDay
	DemoPlans bool
}
