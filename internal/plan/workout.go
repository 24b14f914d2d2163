package plan

import (
	"fmt"
	"strings"
)

const (
	injuryWarmupMarker = "injury-warm"
	tempoWalkMarker    = "tempo-walk"

	minimumSets          = 2
	minimumRestDays      = 2
	shortSleepRestDays   = 3
	shortSleepHoursLimit = 6
)

// adjustWorkoutPlan applies the user's preferences to a raw 7-day workout
// plan. The steps run in a fixed order so that forced rest days and the
// training-day cap settle before any supplemental exercises are inserted.
// The input is never mutated.
func adjustWorkoutPlan(days []WorkoutDay, profile UserProfile) []WorkoutDay {
	restDays := restDaySet(profile.RestDays)
	desired := clamp(profile.TrainingDaysPerWeek, 1, len(weekOrder))

	plan := canonicalizeWeek(days)
	plan = applyForcedRest(plan, restDays)
	plan = capTrainingDays(plan, desired, restDays)
	plan = ensureMinimumRest(plan, minRestDays(profile.SleepHours), restDays)
	plan = applyExerciseAdjustments(plan, profile)

	return plan
}

// applyExerciseAdjustments runs the per-exercise mutations shared by the gym
// adjuster and the calisthenics builder: injury warm-ups, low-movement
// supplements, and high-movement volume reduction.
func applyExerciseAdjustments(plan []WorkoutDay, profile UserProfile) []WorkoutDay {
	if profile.Injuries.HasIssues {
		plan = prependInjuryWarmup(plan)
	}
	if profile.DailyMovement == MovementLow {
		plan = appendTempoWalk(plan)
	}
	if profile.DailyMovement == MovementHigh {
		plan = reduceVolume(plan)
	}
	return plan
}

func restDaySet(days []Weekday) map[Weekday]bool {
	set := make(map[Weekday]bool, len(days))
	for _, day := range days {
		// Malformed weekday names never match the week order and drop out.
		if canonical, ok := ParseWeekday(string(day)); ok {
			set[canonical] = true
		}
	}
	return set
}

func minRestDays(sleepHours float64) int {
	if sleepHours < shortSleepHoursLimit {
		return shortSleepRestDays
	}
	return minimumRestDays
}

// canonicalizeWeek reorders the plan into fixed Mon..Sun order, fills any
// missing weekday with a rest day, and assigns fallback exercise ids.
func canonicalizeWeek(days []WorkoutDay) []WorkoutDay {
	byDay := make(map[Weekday]WorkoutDay, len(days))
	for _, day := range days {
		if canonical, ok := ParseWeekday(string(day.Day)); ok {
			day.Day = canonical
			byDay[canonical] = day
		}
	}

	plan := make([]WorkoutDay, 0, len(weekOrder))
	for _, name := range weekOrder {
		day, ok := byDay[name]
		if !ok {
			plan = append(plan, WorkoutDay{Day: name, IsRestDay: true, Exercises: []Exercise{}})
			continue
		}

		exercises := make([]Exercise, len(day.Exercises))
		for i, exercise := range day.Exercises {
			if exercise.ID == "" {
				exercise.ID = fmt.Sprintf("%s-%d", name, i)
			}
			exercises[i] = exercise
		}
		plan = append(plan, WorkoutDay{Day: name, IsRestDay: day.IsRestDay, Exercises: exercises})
	}
	return plan
}

// applyForcedRest turns every profile-forced rest day into a rest day,
// overriding whatever the raw plan supplied.
func applyForcedRest(plan []WorkoutDay, restDays map[Weekday]bool) []WorkoutDay {
	adjusted := make([]WorkoutDay, len(plan))
	for i, day := range plan {
		if restDays[day.Day] {
			day = WorkoutDay{Day: day.Day, IsRestDay: true, Exercises: []Exercise{}}
		}
		adjusted[i] = day
	}
	return adjusted
}

// capTrainingDays converts active days beyond the desired count to rest,
// scanning in week order. Forced rest days are never touched.
func capTrainingDays(plan []WorkoutDay, desired int, restDays map[Weekday]bool) []WorkoutDay {
	adjusted := make([]WorkoutDay, len(plan))
	copy(adjusted, plan)

	active := 0
	for i, day := range adjusted {
		if day.IsRestDay {
			continue
		}
		active++
		if active > desired && !restDays[day.Day] {
			adjusted[i] = WorkoutDay{Day: day.Day, IsRestDay: true, Exercises: []Exercise{}}
		}
	}
	return adjusted
}

// ensureMinimumRest converts active days to rest in reverse week order until
// the sleep-driven minimum is met or no eligible day remains.
func ensureMinimumRest(plan []WorkoutDay, minRest int, restDays map[Weekday]bool) []WorkoutDay {
	adjusted := make([]WorkoutDay, len(plan))
	copy(adjusted, plan)

	restCount := 0
	for _, day := range adjusted {
		if day.IsRestDay {
			restCount++
		}
	}

	for i := len(adjusted) - 1; i >= 0 && restCount < minRest; i-- {
		day := adjusted[i]
		if day.IsRestDay || restDays[day.Day] {
			continue
		}
		adjusted[i] = WorkoutDay{Day: day.Day, IsRestDay: true, Exercises: []Exercise{}}
		restCount++
	}
	return adjusted
}

// prependInjuryWarmup inserts the fixed mobility warm-up at the front of every
// active day. Re-adjusting an already adjusted plan does not duplicate it.
func prependInjuryWarmup(plan []WorkoutDay) []WorkoutDay {
	adjusted := make([]WorkoutDay, len(plan))
	for i, day := range plan {
		if day.IsRestDay || hasExerciseWithIDMarker(day.Exercises, injuryWarmupMarker) {
			adjusted[i] = day
			continue
		}
		warmup := Exercise{
			ID:      strings.ToLower(string(day.Day)) + "-" + injuryWarmupMarker,
			Name:    "Joint Mobility Reset",
			Sets:    2,
			Reps:    []int{12},
			RestSec: 45,
		}
		exercises := make([]Exercise, 0, len(day.Exercises)+1)
		exercises = append(exercises, warmup)
		exercises = append(exercises, day.Exercises...)
		adjusted[i] = WorkoutDay{Day: day.Day, IsRestDay: false, Exercises: exercises}
	}
	return adjusted
}

// appendTempoWalk adds the low-movement supplement to the end of every active
// day, once.
func appendTempoWalk(plan []WorkoutDay) []WorkoutDay {
	adjusted := make([]WorkoutDay, len(plan))
	for i, day := range plan {
		if day.IsRestDay || hasExerciseWithIDMarker(day.Exercises, tempoWalkMarker) {
			adjusted[i] = day
			continue
		}
		walk := Exercise{
			ID:      strings.ToLower(string(day.Day)) + "-" + tempoWalkMarker,
			Name:    "Tempo Walk Intervals",
			Sets:    3,
			Reps:    []int{8},
			RestSec: 30,
		}
		exercises := make([]Exercise, 0, len(day.Exercises)+1)
		exercises = append(exercises, day.Exercises...)
		exercises = append(exercises, walk)
		adjusted[i] = WorkoutDay{Day: day.Day, IsRestDay: false, Exercises: exercises}
	}
	return adjusted
}

// reduceVolume drops one set from every exercise on active days, floored at
// the two-set minimum.
func reduceVolume(plan []WorkoutDay) []WorkoutDay {
	adjusted := make([]WorkoutDay, len(plan))
	for i, day := range plan {
		if day.IsRestDay {
			adjusted[i] = day
			continue
		}
		exercises := make([]Exercise, len(day.Exercises))
		for j, exercise := range day.Exercises {
			exercise.Sets--
			if exercise.Sets < minimumSets {
				exercise.Sets = minimumSets
			}
			exercises[j] = exercise
		}
		adjusted[i] = WorkoutDay{Day: day.Day, IsRestDay: false, Exercises: exercises}
	}
	return adjusted
}

func hasExerciseWithIDMarker(exercises []Exercise, marker string) bool {
	for _, exercise := range exercises {
		if strings.Contains(exercise.ID, marker) {
			return true
		}
	}
	return false
}
