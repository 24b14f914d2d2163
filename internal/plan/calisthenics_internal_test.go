package plan

import (
	"testing"

	"github.com/claude/fitcoach/internal/ptr"
	"github.com/google/go-cmp/cmp"
)

func homeProfile() UserProfile {
	profile := testProfile()
	profile.TrainingLocation = LocationHome
	profile.TrainingDaysPerWeek = 4
	return profile
}

func TestBuildCalisthenicsPlan_DefaultWeek(t *testing.T) {
	plan := buildCalisthenicsPlan(homeProfile())

	if len(plan) != 7 {
		t.Fatalf("Expected a full 7-day week, got %d days", len(plan))
	}

	// Four training days leave the later blueprint day resting.
	want := []Weekday{Monday, Tuesday, Thursday, Friday}
	if diff := cmp.Diff(want, activeDays(plan)); diff != "" {
		t.Errorf("Active days mismatch (-want +got):\n%s", diff)
	}

	for _, day := range plan {
		if !day.IsRestDay && len(day.Exercises) == 0 {
			t.Errorf("Expected blueprint exercises on active day %s", day.Day)
		}
	}
}

func TestBuildCalisthenicsPlan_ReactivatesRecoveryDaysForHighVolume(t *testing.T) {
	profile := homeProfile()
	profile.TrainingDaysPerWeek = 6

	plan := buildCalisthenicsPlan(profile)

	// Wednesday comes back with its recovery blueprint, but the two-rest-day
	// minimum trades Saturday away again, so the week tops out at five.
	want := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
	if diff := cmp.Diff(want, activeDays(plan)); diff != "" {
		t.Errorf("Active days mismatch (-want +got):\n%s", diff)
	}

	for _, day := range plan {
		if day.Day == Wednesday && len(day.Exercises) == 0 {
			t.Error("Expected the reactivated Wednesday to carry blueprint exercises")
		}
	}
}

func TestBuildCalisthenicsPlan_ForcedRestWins(t *testing.T) {
	profile := homeProfile()
	profile.RestDays = []Weekday{Monday, Thursday}

	plan := buildCalisthenicsPlan(profile)

	for _, day := range plan {
		if (day.Day == Monday || day.Day == Thursday) && !day.IsRestDay {
			t.Errorf("Expected forced rest on %s", day.Day)
		}
	}
}

func TestBuildCalisthenicsPlan_AppliesExerciseAdjustments(t *testing.T) {
	profile := homeProfile()
	profile.Injuries = InjuryStatus{HasIssues: true, Details: ptr.Ref("wrist")}
	profile.DailyMovement = MovementLow

	plan := buildCalisthenicsPlan(profile)

	for _, day := range plan {
		if day.IsRestDay {
			continue
		}
		if day.Exercises[0].Name != "Joint Mobility Reset" {
			t.Errorf("Expected %s to start with the mobility warm-up", day.Day)
		}
		last := day.Exercises[len(day.Exercises)-1]
		if last.Name != "Tempo Walk Intervals" {
			t.Errorf("Expected %s to end with the tempo walk, got %q", day.Day, last.Name)
		}
	}
}

func TestBuildCalisthenicsPlan_Reproducible(t *testing.T) {
	profile := homeProfile()

	first := buildCalisthenicsPlan(profile)
	second := buildCalisthenicsPlan(profile)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Expected identical plans for the same profile (-first +second):\n%s", diff)
	}
}

func TestBuildCalisthenicsPlan_DoesNotShareBlueprintState(t *testing.T) {
	first := buildCalisthenicsPlan(homeProfile())

	// Mutate the returned plan and rebuild: the blueprint must be unaffected.
	first[0].Exercises[0].Reps[0] = 99

	second := buildCalisthenicsPlan(homeProfile())
	if got := second[0].Exercises[0].Reps[0]; got == 99 {
		t.Error("Expected blueprint reps to be isolated from returned plans")
	}
}
