package plan

import (
	"fmt"
	"testing"

	"github.com/claude/fitcoach/internal/ptr"
	"github.com/google/go-cmp/cmp"
)

// fullActiveWeek returns a 7-day plan where every day trains.
func fullActiveWeek() []WorkoutDay {
	days := make([]WorkoutDay, 0, len(weekOrder))
	for _, name := range weekOrder {
		days = append(days, WorkoutDay{
			Day:       name,
			IsRestDay: false,
			Exercises: []Exercise{
				{ID: fmt.Sprintf("%s-a", name), Name: "Back Squat", Sets: 4, Reps: []int{8}, RestSec: 90},
				{ID: fmt.Sprintf("%s-b", name), Name: "Bench Press", Sets: 3, Reps: []int{10}, RestSec: 90},
			},
		})
	}
	return days
}

func testProfile() UserProfile {
	return UserProfile{
		Name:                "Test",
		TrainingDaysPerWeek: 7,
		RestDays:            []Weekday{},
		TrainingLocation:    LocationGym,
		MealsPerDay:         3,
		SleepHours:          7,
		DailyMovement:       MovementMedium,
	}
}

func activeDays(plan []WorkoutDay) []Weekday {
	var active []Weekday
	for _, day := range plan {
		if !day.IsRestDay {
			active = append(active, day.Day)
		}
	}
	return active
}

func TestAdjustWorkoutPlan_ForcedRestDays(t *testing.T) {
	profile := testProfile()
	profile.RestDays = []Weekday{Saturday, Sunday}

	plan := adjustWorkoutPlan(fullActiveWeek(), profile)

	for _, day := range plan {
		switch day.Day {
		case Saturday, Sunday:
			if !day.IsRestDay {
				t.Errorf("Expected %s to be a forced rest day", day.Day)
			}
			if len(day.Exercises) != 0 {
				t.Errorf("Expected %s to carry no exercises, got %d", day.Day, len(day.Exercises))
			}
		}
	}
}

func TestAdjustWorkoutPlan_CapsTrainingDays(t *testing.T) {
	profile := testProfile()
	profile.TrainingDaysPerWeek = 3
	profile.RestDays = []Weekday{}

	plan := adjustWorkoutPlan(fullActiveWeek(), profile)

	want := []Weekday{Monday, Tuesday, Wednesday}
	if diff := cmp.Diff(want, activeDays(plan)); diff != "" {
		t.Errorf("Active days mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjustWorkoutPlan_ShortSleepForcesExtraRest(t *testing.T) {
	profile := testProfile()
	profile.SleepHours = 5.5

	// Nothing else trims the week, so only the sleep rule applies. Rest is
	// taken from the end of the week.
	plan := adjustWorkoutPlan(fullActiveWeek(), profile)

	want := []Weekday{Monday, Tuesday, Wednesday, Thursday}
	if diff := cmp.Diff(want, activeDays(plan)); diff != "" {
		t.Errorf("Active days mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjustWorkoutPlan_MinimumRestNeverTakesForcedTrainingAway(t *testing.T) {
	profile := testProfile()
	profile.TrainingDaysPerWeek = 5
	profile.SleepHours = 5

	plan := adjustWorkoutPlan(fullActiveWeek(), profile)

	restCount := 0
	for _, day := range plan {
		if day.IsRestDay {
			restCount++
		}
	}
	if restCount < 3 {
		t.Errorf("Expected at least 3 rest days for short sleep, got %d", restCount)
	}
	if got := len(activeDays(plan)); got != 4 {
		t.Errorf("Expected 4 active days, got %d", got)
	}
}

func TestAdjustWorkoutPlan_InjuryWarmup(t *testing.T) {
	profile := testProfile()
	profile.Injuries = InjuryStatus{HasIssues: true, Details: ptr.Ref("left knee")}

	plan := adjustWorkoutPlan(fullActiveWeek(), profile)

	for _, day := range plan {
		if day.IsRestDay {
			continue
		}
		if len(day.Exercises) == 0 || day.Exercises[0].Name != "Joint Mobility Reset" {
			t.Errorf("Expected %s to start with the mobility warm-up", day.Day)
		}
	}

	// Adjusting again must not stack a second warm-up.
	again := adjustWorkoutPlan(plan, profile)
	for _, day := range again {
		warmups := 0
		for _, exercise := range day.Exercises {
			if exercise.Name == "Joint Mobility Reset" {
				warmups++
			}
		}
		if warmups > 1 {
			t.Errorf("Expected at most one warm-up on %s, got %d", day.Day, warmups)
		}
	}
}

func TestAdjustWorkoutPlan_LowMovementAppendsTempoWalk(t *testing.T) {
	profile := testProfile()
	profile.DailyMovement = MovementLow

	plan := adjustWorkoutPlan(fullActiveWeek(), profile)

	for _, day := range plan {
		if day.IsRestDay {
			continue
		}
		last := day.Exercises[len(day.Exercises)-1]
		if last.Name != "Tempo Walk Intervals" {
			t.Errorf("Expected %s to end with the tempo walk, got %q", day.Day, last.Name)
		}
	}
}

func TestAdjustWorkoutPlan_HighMovementReducesVolume(t *testing.T) {
	profile := testProfile()
	profile.DailyMovement = MovementHigh

	raw := []WorkoutDay{{
		Day:       Monday,
		IsRestDay: false,
		Exercises: []Exercise{
			{ID: "mon-squat", Name: "Back Squat", Sets: 4, Reps: []int{8}, RestSec: 90},
			{ID: "mon-row", Name: "Barbell Row", Sets: 2, Reps: []int{10}, RestSec: 90},
		},
	}}

	plan := adjustWorkoutPlan(raw, profile)

	monday := plan[0]
	if got := monday.Exercises[0].Sets; got != 3 {
		t.Errorf("Expected 4 sets to drop to 3, got %d", got)
	}
	// Two sets is the floor.
	if got := monday.Exercises[1].Sets; got != 2 {
		t.Errorf("Expected 2 sets to stay at 2, got %d", got)
	}
}

func TestAdjustWorkoutPlan_FillsMissingDays(t *testing.T) {
	raw := []WorkoutDay{{
		Day:       Thursday,
		IsRestDay: false,
		Exercises: []Exercise{{ID: "thu-squat", Name: "Back Squat", Sets: 3, Reps: []int{8}, RestSec: 90}},
	}}

	plan := adjustWorkoutPlan(raw, testProfile())

	if len(plan) != 7 {
		t.Fatalf("Expected a full 7-day week, got %d days", len(plan))
	}
	for i, day := range plan {
		if day.Day != weekOrder[i] {
			t.Errorf("Expected day %d to be %s, got %s", i, weekOrder[i], day.Day)
		}
		if day.Day == Thursday {
			if day.IsRestDay {
				t.Error("Expected Thursday to stay active")
			}
			continue
		}
		if !day.IsRestDay {
			t.Errorf("Expected missing day %s to become a rest day", day.Day)
		}
	}
}

func TestAdjustWorkoutPlan_AssignsFallbackIDs(t *testing.T) {
	raw := []WorkoutDay{{
		Day:       Monday,
		IsRestDay: false,
		Exercises: []Exercise{
			{Name: "Back Squat", Sets: 3, Reps: []int{8}, RestSec: 90},
			{Name: "Bench Press", Sets: 3, Reps: []int{8}, RestSec: 90},
		},
	}}

	plan := adjustWorkoutPlan(raw, testProfile())

	monday := plan[0]
	if got := monday.Exercises[0].ID; got != "Mon-0" {
		t.Errorf("Expected fallback id Mon-0, got %q", got)
	}
	if got := monday.Exercises[1].ID; got != "Mon-1" {
		t.Errorf("Expected fallback id Mon-1, got %q", got)
	}
}

func TestAdjustWorkoutPlan_Idempotent(t *testing.T) {
	profile := testProfile()
	profile.TrainingDaysPerWeek = 4
	profile.RestDays = []Weekday{Sunday}
	profile.Injuries = InjuryStatus{HasIssues: true, Details: ptr.Ref("lower back")}
	profile.DailyMovement = MovementLow

	once := adjustWorkoutPlan(fullActiveWeek(), profile)
	twice := adjustWorkoutPlan(once, profile)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Adjusting an adjusted plan changed it (-once +twice):\n%s", diff)
	}
}

func TestAdjustWorkoutPlan_DoesNotMutateInput(t *testing.T) {
	raw := fullActiveWeek()
	profile := testProfile()
	profile.RestDays = []Weekday{Monday}
	profile.DailyMovement = MovementHigh

	adjustWorkoutPlan(raw, profile)

	if raw[0].IsRestDay {
		t.Error("Expected the input week to be left untouched")
	}
	if raw[0].Exercises[0].Sets != 4 {
		t.Errorf("Expected input sets to stay 4, got %d", raw[0].Exercises[0].Sets)
	}
}

func TestMinRestDays(t *testing.T) {
	tests := []struct {
		sleepHours float64
		want       int
	}{
		{sleepHours: 5, want: 3},
		{sleepHours: 5.9, want: 3},
		{sleepHours: 6, want: 2},
		{sleepHours: 8, want: 2},
	}
	for _, tt := range tests {
		if got := minRestDays(tt.sleepHours); got != tt.want {
			t.Errorf("minRestDays(%v) = %d, want %d", tt.sleepHours, got, tt.want)
		}
	}
}
