package plan

import (
	"encoding/json"
	"fmt"
)

// Reps accepts either a single number or an array of numbers on the wire and
// always normalizes to an array.
type Reps []int

// UnmarshalJSON implements the scalar-or-array coercion.
func (r *Reps) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err == nil {
		*r = values
		return nil
	}

	var single int
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("reps must be a number or an array of numbers: %w", err)
	}
	*r = Reps{single}
	return nil
}

// RawExercise is the loosely-typed exercise record produced by the AI
// provider or a demo template.
type RawExercise struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Sets           int      `json:"sets"`
	Reps           Reps     `json:"reps"`
	RestSec        int      `json:"restSec"`
	TargetWeightKg *float64 `json:"targetWeightKg"`
	VideoURL       string   `json:"videoUrl"`
}

// RawWorkoutDay is one day of a raw workout plan before adjustment.
type RawWorkoutDay struct {
	Day       string        `json:"day"`
	IsRestDay bool          `json:"isRestDay"`
	Exercises []RawExercise `json:"exercises"`
}

// RawMeal is the loosely-typed meal record produced by the AI provider or a
// demo template.
type RawMeal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
	Carbs       int      `json:"carbs"`
	Fats        int      `json:"fats"`
	Ingredients []string `json:"ingredients"`
	ImageURL    string   `json:"imageUrl"`
}

// RawMealDay is one day of a raw meal plan before adjustment.
type RawMealDay struct {
	Day   string    `json:"day"`
	Meals []RawMeal `json:"meals"`
}

// RawPlans bundles the provider response for one generation request.
type RawPlans struct {
	Workout []RawWorkoutDay
	Meals   []RawMealDay
}

// mapWorkoutDays coerces raw workout records into the canonical shape,
// assigning name-based fallback ids. Invalid input coerces to safe defaults
// rather than failing.
func mapWorkoutDays(raw []RawWorkoutDay) []WorkoutDay {
	days := make([]WorkoutDay, 0, len(raw))
	for _, rawDay := range raw {
		exercises := make([]Exercise, 0, len(rawDay.Exercises))
		for i, rawExercise := range rawDay.Exercises {
			id := rawExercise.ID
			if id == "" {
				if rawExercise.Name != "" {
					id = fmt.Sprintf("%s-%s", rawDay.Day, rawExercise.Name)
				} else {
					id = fmt.Sprintf("%s-%d", rawDay.Day, i)
				}
			}
			exercises = append(exercises, Exercise{
				ID:             id,
				Name:           rawExercise.Name,
				Sets:           rawExercise.Sets,
				Reps:           rawExercise.Reps,
				RestSec:        rawExercise.RestSec,
				TargetWeightKg: rawExercise.TargetWeightKg,
				VideoURL:       rawExercise.VideoURL,
			})
		}
		days = append(days, WorkoutDay{
			Day:       Weekday(rawDay.Day),
			IsRestDay: rawDay.IsRestDay,
			Exercises: exercises,
		})
	}
	return days
}

// mapMealDays coerces raw meal records into the canonical shape.
func mapMealDays(raw []RawMealDay) []MealDay {
	days := make([]MealDay, 0, len(raw))
	for _, rawDay := range raw {
		meals := make([]Meal, 0, len(rawDay.Meals))
		for i, rawMeal := range rawDay.Meals {
			id := rawMeal.ID
			if id == "" {
				id = fmt.Sprintf("%s-%d-%s", rawDay.Day, i, rawMeal.Name)
			}
			ingredients := rawMeal.Ingredients
			if ingredients == nil {
				ingredients = []string{}
			}
			meals = append(meals, Meal{
				ID:          id,
				Name:        rawMeal.Name,
				Type:        MealType(rawMeal.Type),
				Calories:    rawMeal.Calories,
				Protein:     rawMeal.Protein,
				Carbs:       rawMeal.Carbs,
				Fats:        rawMeal.Fats,
				Ingredients: ingredients,
				ImageURL:    rawMeal.ImageURL,
			})
		}
		days = append(days, MealDay{Day: Weekday(rawDay.Day), Meals: meals})
	}
	return days
}
