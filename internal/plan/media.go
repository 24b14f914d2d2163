package plan

import (
	"net/url"
	"strings"
)

type mediaPattern struct {
	keywords []string
	url      string
}

//nolint:gochecknoglobals,lll // fixed lookup tables
var exerciseImagePatterns = []mediaPattern{
	{keywords: []string{"squat", "lunge"}, url: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=800&q=80"},
	{keywords: []string{"press", "bench"}, url: "https://images.unsplash.com/photo-1517964106626-460c5db4215c?auto=format&fit=crop&w=800&q=80"},
	{keywords: []string{"deadlift", "row"}, url: "https://images.unsplash.com/photo-1517832207067-4db24a2ae47c?auto=format&fit=crop&w=800&q=80"},
	{keywords: []string{"pull", "lat", "chin"}, url: "https://images.unsplash.com/photo-1518459031867-a89b944bffe4?auto=format&fit=crop&w=800&q=80"},
	{keywords: []string{"curl", "bicep"}, url: "https://images.unsplash.com/photo-1526402462314-554fa8a37df8?auto=format&fit=crop&w=800&q=80"},
	{keywords: []string{"shoulder", "raise"}, url: "https://images.unsplash.com/photo-1598970434795-0c54fe7c0648?auto=format&fit=crop&w=800&q=80"},
	{keywords: []string{"cardio", "run", "bike"}, url: "https://images.unsplash.com/photo-1554284126-aa88f22d8b74?auto=format&fit=crop&w=800&q=80"},
}

//nolint:gochecknoglobals,lll // fixed lookup tables
var exerciseVideoPatterns = []mediaPattern{
	{keywords: []string{"squat"}, url: "https://cdn.coverr.co/videos/coverr-woman-lifting-weights-1930/1080p.mp4"},
	{keywords: []string{"press"}, url: "https://cdn.coverr.co/videos/coverr-athletic-man-doing-pushups-9980/1080p.mp4"},
	{keywords: []string{"deadlift", "row"}, url: "https://cdn.coverr.co/videos/coverr-man-doing-deadlifts-1950/1080p.mp4"},
	{keywords: []string{"pull", "chin"}, url: "https://cdn.coverr.co/videos/coverr-pull-ups-in-the-gym-3978/1080p.mp4"},
}

const (
	defaultExerciseImage = "https://images.unsplash.com/photo-1517832207067-4db24a2ae47c?auto=format&fit=crop&w=800&q=80"
	defaultExerciseVideo = "https://samplelib.com/lib/preview/mp4/sample-5s.mp4"
	mealPlaceholderImage = "/images/meal-placeholder.svg"
)

// findMediaMatch returns the URL of the first pattern whose keyword appears
// in the name, or the fallback.
func findMediaMatch(name string, patterns []mediaPattern, fallback string) string {
	lower := strings.ToLower(name)
	for _, pattern := range patterns {
		for _, keyword := range pattern.keywords {
			if strings.Contains(lower, keyword) {
				return pattern.url
			}
		}
	}
	return fallback
}

func exerciseImage(name string) string {
	return findMediaMatch(name, exerciseImagePatterns, defaultExerciseImage)
}

func exerciseVideo(name string) string {
	return findMediaMatch(name, exerciseVideoPatterns, defaultExerciseVideo)
}

func mealImage(_ string, _ MealType) string {
	return mealPlaceholderImage
}

// sanitizeMediaURL accepts only absolute http(s) URLs. Anything else returns
// empty so the lookup table supplies a safe default.
func sanitizeMediaURL(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	return parsed.String()
}

// attachWorkoutMedia resolves image and video URLs for every exercise.
// Supplied video URLs survive only when they pass sanitization.
func attachWorkoutMedia(days []WorkoutDay) []WorkoutDay {
	annotated := make([]WorkoutDay, len(days))
	for i, day := range days {
		exercises := make([]Exercise, len(day.Exercises))
		for j, exercise := range day.Exercises {
			exercise.ImageURL = exerciseImage(exercise.Name)
			if sanitized := sanitizeMediaURL(exercise.VideoURL); sanitized != "" {
				exercise.VideoURL = sanitized
			} else {
				exercise.VideoURL = exerciseVideo(exercise.Name)
			}
			exercises[j] = exercise
		}
		annotated[i] = WorkoutDay{Day: day.Day, IsRestDay: day.IsRestDay, Exercises: exercises}
	}
	return annotated
}

// attachMealMedia resolves image URLs for every meal.
func attachMealMedia(days []MealDay) []MealDay {
	annotated := make([]MealDay, len(days))
	for i, day := range days {
		meals := make([]Meal, len(day.Meals))
		for j, meal := range day.Meals {
			if sanitized := sanitizeMediaURL(meal.ImageURL); sanitized != "" {
				meal.ImageURL = sanitized
			} else {
				meal.ImageURL = mealImage(meal.Name, meal.Type)
			}
			meals[j] = meal
		}
		annotated[i] = MealDay{Day: day.Day, Meals: meals}
	}
	return annotated
}
