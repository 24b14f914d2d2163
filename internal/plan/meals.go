package plan

import (
	"fmt"
	"math"
)

const (
	minMealsPerDay = 1
	maxMealsPerDay = 6

	fillerMealName = "Hydration Boost Smoothie"
)

// fillerMeal pads a day that has fewer meals than requested. Ids carry the
// insertion index so padded days keep unique, ordered ids.
func fillerMeal(day Weekday, index int) Meal {
	return Meal{
		ID:          fmt.Sprintf("%s-hydration-%d", day, index),
		Name:        fillerMealName,
		Type:        MealSnack,
		Calories:    180,
		Protein:     8,
		Carbs:       30,
		Fats:        4,
		Ingredients: []string{"Water", "Citrus", "Pink Salt"},
	}
}

// adjustMealPlan trims or pads every day to exactly the user's meal count and
// applies activity-level adjustments to the final meal of each day. The input
// is never mutated.
//
// Truncation happens before padding on purpose: filler only appears when the
// source genuinely had fewer meals than requested.
func adjustMealPlan(days []MealDay, profile UserProfile) []MealDay {
	limit := clamp(profile.MealsPerDay, minMealsPerDay, maxMealsPerDay)

	week := canonicalizeMealWeek(days)
	adjusted := make([]MealDay, len(week))
	for i, day := range week {
		meals := make([]Meal, 0, limit)
		for j, meal := range day.Meals {
			if j >= limit {
				break
			}
			if meal.ID == "" {
				meal.ID = fmt.Sprintf("%s-%d-%s", day.Day, j, meal.Name)
			}
			meals = append(meals, meal)
		}

		for len(meals) < limit {
			meals = append(meals, fillerMeal(day.Day, len(meals)))
		}

		if profile.DailyMovement == MovementLow && len(meals) > 0 {
			last := meals[len(meals)-1]
			last.Calories = scaleDown(last.Calories)
			last.Carbs = scaleDown(last.Carbs)
			last.Fats = max(1, scaleDown(last.Fats))
			meals[len(meals)-1] = last
		}

		if profile.DailyMovement == MovementHigh && len(meals) > 0 {
			last := meals[len(meals)-1]
			last.Name += " + Electrolyte Sip"
			last.Calories += 80
			last.Carbs += 15
			last.Fats += 2
			meals[len(meals)-1] = last
		}

		adjusted[i] = MealDay{Day: day.Day, Meals: meals}
	}
	return adjusted
}

// canonicalizeMealWeek reorders meal days into fixed Mon..Sun order. Missing
// weekdays become empty days that the filler padding completes.
func canonicalizeMealWeek(days []MealDay) []MealDay {
	byDay := make(map[Weekday]MealDay, len(days))
	for _, day := range days {
		if canonical, ok := ParseWeekday(string(day.Day)); ok {
			day.Day = canonical
			byDay[canonical] = day
		}
	}

	week := make([]MealDay, 0, len(weekOrder))
	for _, name := range weekOrder {
		day, ok := byDay[name]
		if !ok {
			day = MealDay{Day: name, Meals: []Meal{}}
		}
		week = append(week, day)
	}
	return week
}

// scaleDown applies the low-movement 0.9 factor with conventional rounding.
func scaleDown(v int) int {
	return int(math.Round(float64(v) * 0.9))
}
