package plan

import "fmt"

// defaultCalisthenicsRestDays are the blueprint's built-in recovery days.
//
//nolint:gochecknoglobals // fixed blueprint data
var defaultCalisthenicsRestDays = map[Weekday]bool{
	Wednesday: true,
	Sunday:    true,
}

// calisthenicsBlueprint is the fixed weekly bodyweight template used when the
// user trains at home. Ids are stable so repeated builds for the same profile
// are reproducible.
//
//nolint:gochecknoglobals // fixed blueprint data
var calisthenicsBlueprint = map[Weekday][]Exercise{
	Monday: {
		{ID: "mon-primal-warm", Name: "Primal Flow Warm-Up", Sets: 2, Reps: []int{12}, RestSec: 30},
		{ID: "mon-push-wave", Name: "Push-Up Wave Ladder", Sets: 4, Reps: []int{10}, RestSec: 45},
		{ID: "mon-ring-row", Name: "Suspension Rows", Sets: 4, Reps: []int{12}, RestSec: 60},
		{ID: "mon-core-hold", Name: "Hollow Body Hold", Sets: 3, Reps: []int{45}, RestSec: 30},
	},
	Tuesday: {
		{ID: "tue-cossack", Name: "Cossack Squat Flow", Sets: 3, Reps: []int{10}, RestSec: 45},
		{ID: "tue-pistol-prep", Name: "Pistol Squat Prep", Sets: 4, Reps: []int{6}, RestSec: 60},
		{ID: "tue-glute-bridge", Name: "Single-Leg Glute Bridge Pulse", Sets: 3, Reps: []int{14}, RestSec: 45},
		{ID: "tue-calf-wave", Name: "Calf Wave Raises", Sets: 3, Reps: []int{20}, RestSec: 30},
	},
	Wednesday: {
		{ID: "wed-mobilize", Name: "Flow Mobility Sequence", Sets: 2, Reps: []int{8}, RestSec: 30},
		{ID: "wed-breath", Name: "Box Breathing Reset", Sets: 3, Reps: []int{5}, RestSec: 60},
		{ID: "wed-shoulder", Name: "Scapular Circles", Sets: 3, Reps: []int{12}, RestSec: 30},
	},
	Thursday: {
		{ID: "thu-planche", Name: "Pseudo Planche Push-Up", Sets: 4, Reps: []int{8}, RestSec: 60},
		{ID: "thu-dip", Name: "Straight Bar Dips", Sets: 4, Reps: []int{10}, RestSec: 60},
		{ID: "thu-archer", Name: "Archer Rows", Sets: 3, Reps: []int{8}, RestSec: 60},
		{ID: "thu-pike", Name: "Pike Pulse Holds", Sets: 3, Reps: []int{30}, RestSec: 45},
	},
	Friday: {
		{ID: "fri-leg-drag", Name: "Dragon Squat Flow", Sets: 3, Reps: []int{6}, RestSec: 60},
		{ID: "fri-nordic", Name: "Nordic Curl Eccentrics", Sets: 3, Reps: []int{6}, RestSec: 75},
		{ID: "fri-core-wave", Name: "Core Wave Complex", Sets: 4, Reps: []int{12}, RestSec: 45},
		{ID: "fri-reach", Name: "Jefferson Curls", Sets: 3, Reps: []int{10}, RestSec: 60},
	},
	Saturday: {
		{ID: "sat-handstand", Name: "Wall Handstand Hover", Sets: 5, Reps: []int{30}, RestSec: 60},
		{ID: "sat-press", Name: "Straddle Press Negative", Sets: 3, Reps: []int{5}, RestSec: 75},
		{ID: "sat-lsit", Name: "L-Sit to Tuck Flow", Sets: 4, Reps: []int{12}, RestSec: 45},
		{ID: "sat-flow", Name: "Beast to Crab Switch", Sets: 3, Reps: []int{16}, RestSec: 45},
	},
	Sunday: {
		{ID: "sun-mobility", Name: "Spinal Wave Mobility", Sets: 2, Reps: []int{10}, RestSec: 30},
		{ID: "sun-hip", Name: "90/90 Breath Holds", Sets: 3, Reps: []int{8}, RestSec: 45},
		{ID: "sun-soft-tissue", Name: "Soft Tissue Release", Sets: 2, Reps: []int{12}, RestSec: 45},
	},
}

// cloneBlueprintExercises copies blueprint exercises so the blueprint itself
// is never mutated, assigning name-based fallback ids where one is missing.
func cloneBlueprintExercises(exercises []Exercise) []Exercise {
	cloned := make([]Exercise, len(exercises))
	for i, exercise := range exercises {
		if exercise.ID == "" {
			exercise.ID = fmt.Sprintf("%s-%d", exercise.Name, i)
		}
		if exercise.Reps != nil {
			reps := make([]int, len(exercise.Reps))
			copy(reps, exercise.Reps)
			exercise.Reps = reps
		}
		cloned[i] = exercise
	}
	return cloned
}

// buildCalisthenicsPlan produces the finalized home-training week from the
// fixed blueprint instead of an externally supplied plan. The rest-day and
// per-exercise rules match the gym adjuster.
func buildCalisthenicsPlan(profile UserProfile) []WorkoutDay {
	restDays := restDaySet(profile.RestDays)
	desired := clamp(profile.TrainingDaysPerWeek, 1, len(weekOrder))

	plan := make([]WorkoutDay, 0, len(weekOrder))
	active := 0
	for _, name := range weekOrder {
		shouldRest := defaultCalisthenicsRestDays[name] || restDays[name]
		day := WorkoutDay{Day: name, IsRestDay: shouldRest, Exercises: []Exercise{}}
		if !shouldRest {
			day.Exercises = cloneBlueprintExercises(calisthenicsBlueprint[name])
			active++
		}
		plan = append(plan, day)
	}

	// Reactivate default rest days in week order when the user wants more
	// sessions, using their blueprint exercises. Forced rest days and days
	// with an empty blueprint stay as they are, so the week may end up with
	// fewer active days than desired.
	for i := 0; i < len(plan) && active < desired; i++ {
		day := plan[i]
		if !day.IsRestDay || restDays[day.Day] {
			continue
		}
		blueprint := calisthenicsBlueprint[day.Day]
		if len(blueprint) == 0 {
			continue
		}
		plan[i] = WorkoutDay{Day: day.Day, IsRestDay: false, Exercises: cloneBlueprintExercises(blueprint)}
		active++
	}

	// Deactivate extra active days in reverse week order when the user wants
	// fewer sessions.
	for i := len(plan) - 1; i >= 0 && active > desired; i-- {
		day := plan[i]
		if day.IsRestDay || restDays[day.Day] {
			continue
		}
		plan[i] = WorkoutDay{Day: day.Day, IsRestDay: true, Exercises: []Exercise{}}
		active--
	}

	plan = ensureMinimumRest(plan, minRestDays(profile.SleepHours), restDays)
	plan = applyExerciseAdjustments(plan, profile)

	return plan
}
