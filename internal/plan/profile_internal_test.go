package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUserProfile_WithDefaults_FillsMissingFields(t *testing.T) {
	got := UserProfile{Name: "Alex"}.WithDefaults()

	want := UserProfile{
		Name:                "Alex",
		TrainingDaysPerWeek: 4,
		RestDays:            []Weekday{},
		TrainingLocation:    LocationGym,
		MealsPerDay:         3,
		SleepHours:          7,
		DailyMovement:       MovementMedium,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Profile mismatch (-want +got):\n%s", diff)
	}
}

func TestUserProfile_WithDefaults_IsANoOpOnPopulatedProfiles(t *testing.T) {
	profile := UserProfile{
		Name:                "Alex",
		TrainingDaysPerWeek: 5,
		RestDays:            []Weekday{Sunday},
		TrainingLocation:    LocationHome,
		MealsPerDay:         4,
		SleepHours:          6.5,
		DailyMovement:       MovementLow,
	}

	if diff := cmp.Diff(profile, profile.WithDefaults()); diff != "" {
		t.Errorf("Expected a populated profile to pass through unchanged (-want +got):\n%s", diff)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, low, high int
		want         int
	}{
		{v: 5, low: 1, high: 7, want: 5},
		{v: 0, low: 1, high: 7, want: 1},
		{v: 9, low: 1, high: 7, want: 7},
		{v: 1, low: 1, high: 7, want: 1},
		{v: 7, low: 1, high: 7, want: 7},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.low, tt.high); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.v, tt.low, tt.high, got, tt.want)
		}
	}
}
