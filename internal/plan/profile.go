package plan

const (
	defaultTrainingDaysPerWeek = 4
	defaultMealsPerDay         = 3
	defaultSleepHours          = 7
)

// WithDefaults returns a profile where every adjustment-relevant field has a
// concrete value. Zero values stand for fields missing from older persisted
// profiles. Normalizing an already-normalized profile is a no-op.
func (p UserProfile) WithDefaults() UserProfile {
	normalized := p

	if normalized.TrainingDaysPerWeek == 0 {
		normalized.TrainingDaysPerWeek = defaultTrainingDaysPerWeek
	}
	if normalized.RestDays == nil {
		normalized.RestDays = []Weekday{}
	}
	if normalized.TrainingLocation == "" {
		normalized.TrainingLocation = LocationGym
	}
	if normalized.MealsPerDay == 0 {
		normalized.MealsPerDay = defaultMealsPerDay
	}
	if normalized.SleepHours == 0 {
		normalized.SleepHours = defaultSleepHours
	}
	if normalized.DailyMovement == "" {
		normalized.DailyMovement = MovementMedium
	}

	return normalized
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
