package plan

import (
	"strings"
	"testing"
)

func TestExerciseImage_KeywordMatching(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
	}{
		{name: "Goblet Squat", keyword: "squat"},
		{name: "Walking Lunge", keyword: "lunge"},
		{name: "Incline Bench Press", keyword: "press"},
		{name: "Romanian Deadlift", keyword: "deadlift"},
		{name: "Lat Pulldown", keyword: "lat"},
		{name: "BICEP CURL", keyword: "curl"},
	}
	for _, tt := range tests {
		url := exerciseImage(tt.name)
		if url == "" {
			t.Errorf("Expected an image URL for %q", tt.name)
		}
		if !strings.HasPrefix(url, "https://") {
			t.Errorf("Expected an https image URL for %q, got %q", tt.name, url)
		}
	}
}

func TestExerciseImage_FallsBackForUnknownNames(t *testing.T) {
	if got := exerciseImage("Underwater Basket Weaving"); got != defaultExerciseImage {
		t.Errorf("Expected the default image, got %q", got)
	}
}

func TestExerciseVideo_FallsBackForUnknownNames(t *testing.T) {
	if got := exerciseVideo("Underwater Basket Weaving"); got != defaultExerciseVideo {
		t.Errorf("Expected the default video, got %q", got)
	}
}

func TestSanitizeMediaURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "https passes", raw: "https://example.com/clip.mp4", want: "https://example.com/clip.mp4"},
		{name: "http passes", raw: "http://example.com/clip.mp4", want: "http://example.com/clip.mp4"},
		{name: "javascript rejected", raw: "javascript:alert(1)", want: ""},
		{name: "data rejected", raw: "data:text/html;base64,xyz", want: ""},
		{name: "relative rejected", raw: "/videos/clip.mp4", want: ""},
		{name: "empty passes through", raw: "", want: ""},
		{name: "garbage rejected", raw: "://not-a-url", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeMediaURL(tt.raw); got != tt.want {
				t.Errorf("sanitizeMediaURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAttachWorkoutMedia(t *testing.T) {
	days := []WorkoutDay{{
		Day:       Monday,
		IsRestDay: false,
		Exercises: []Exercise{
			{ID: "a", Name: "Goblet Squat", Sets: 3, Reps: []int{8}, RestSec: 90},
			{ID: "b", Name: "Bench Press", Sets: 3, Reps: []int{8}, RestSec: 90,
				VideoURL: "https://example.com/bench.mp4"},
			{ID: "c", Name: "Bench Press", Sets: 3, Reps: []int{8}, RestSec: 90,
				VideoURL: "javascript:alert(1)"},
		},
	}}

	annotated := attachWorkoutMedia(days)

	exercises := annotated[0].Exercises
	if exercises[0].ImageURL == "" {
		t.Error("Expected every exercise to get an image URL")
	}
	if exercises[0].VideoURL == "" {
		t.Error("Expected a keyword video for the squat")
	}
	// A valid supplied video survives.
	if got := exercises[1].VideoURL; got != "https://example.com/bench.mp4" {
		t.Errorf("Expected the supplied video to survive, got %q", got)
	}
	// An unsafe supplied video is replaced by the keyword lookup.
	if got := exercises[2].VideoURL; strings.HasPrefix(got, "javascript:") || got == "" {
		t.Errorf("Expected unsafe video to be replaced, got %q", got)
	}
}

func TestAttachMealMedia(t *testing.T) {
	days := []MealDay{{
		Day: Monday,
		Meals: []Meal{
			{ID: "a", Name: "Oat Bowl", Type: MealBreakfast},
			{ID: "b", Name: "Salmon Plate", Type: MealDinner, ImageURL: "https://example.com/salmon.jpg"},
			{ID: "c", Name: "Sneaky Snack", Type: MealSnack, ImageURL: "ftp://example.com/snack.jpg"},
		},
	}}

	annotated := attachMealMedia(days)

	meals := annotated[0].Meals
	if got := meals[0].ImageURL; got != mealPlaceholderImage {
		t.Errorf("Expected the placeholder for a meal without media, got %q", got)
	}
	if got := meals[1].ImageURL; got != "https://example.com/salmon.jpg" {
		t.Errorf("Expected the supplied image to survive, got %q", got)
	}
	if got := meals[2].ImageURL; got != mealPlaceholderImage {
		t.Errorf("Expected unsafe image to be replaced by the placeholder, got %q", got)
	}
}
