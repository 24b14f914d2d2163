package plan

// demoWorkoutPlan is the built-in gym plan used when the remote provider is
// unavailable or the user explicitly asks for demo plans.
func demoWorkoutPlan() []RawWorkoutDay {
	return []RawWorkoutDay{
		{Day: "Mon", Exercises: []RawExercise{
			{ID: "mon-goblet-squat", Name: "Goblet Squat", Sets: 4, Reps: Reps{8, 10}, RestSec: 90},
			{ID: "mon-bench-press", Name: "Barbell Bench Press", Sets: 4, Reps: Reps{6, 8}, RestSec: 120},
			{ID: "mon-seated-row", Name: "Seated Cable Row", Sets: 3, Reps: Reps{10, 12}, RestSec: 90},
			{ID: "mon-plank", Name: "Weighted Plank", Sets: 3, Reps: Reps{45}, RestSec: 60},
		}},
		{Day: "Tue", Exercises: []RawExercise{
			{ID: "tue-deadlift", Name: "Romanian Deadlift", Sets: 4, Reps: Reps{6, 8}, RestSec: 120},
			{ID: "tue-lunge", Name: "Walking Lunge", Sets: 3, Reps: Reps{12}, RestSec: 90},
			{ID: "tue-leg-curl", Name: "Lying Leg Curl", Sets: 3, Reps: Reps{10, 12}, RestSec: 60},
			{ID: "tue-calf-raise", Name: "Standing Calf Raise", Sets: 4, Reps: Reps{15}, RestSec: 45},
		}},
		{Day: "Wed", IsRestDay: true, Exercises: []RawExercise{}},
		{Day: "Thu", Exercises: []RawExercise{
			{ID: "thu-ohp", Name: "Overhead Press", Sets: 4, Reps: Reps{6, 8}, RestSec: 120},
			{ID: "thu-pulldown", Name: "Lat Pulldown", Sets: 4, Reps: Reps{8, 10}, RestSec: 90},
			{ID: "thu-lateral-raise", Name: "Dumbbell Lateral Raise", Sets: 3, Reps: Reps{12, 15}, RestSec: 60},
			{ID: "thu-curl", Name: "Incline Dumbbell Curl", Sets: 3, Reps: Reps{10, 12}, RestSec: 60},
		}},
		{Day: "Fri", Exercises: []RawExercise{
			{ID: "fri-front-squat", Name: "Front Squat", Sets: 4, Reps: Reps{6, 8}, RestSec: 120},
			{ID: "fri-hip-thrust", Name: "Barbell Hip Thrust", Sets: 3, Reps: Reps{10, 12}, RestSec: 90},
			{ID: "fri-leg-press", Name: "Leg Press", Sets: 3, Reps: Reps{10, 12}, RestSec: 90},
			{ID: "fri-hanging-raise", Name: "Hanging Knee Raise", Sets: 3, Reps: Reps{12}, RestSec: 60},
		}},
		{Day: "Sat", Exercises: []RawExercise{
			{ID: "sat-incline-press", Name: "Incline Dumbbell Press", Sets: 4, Reps: Reps{8, 10}, RestSec: 90},
			{ID: "sat-pullup", Name: "Assisted Pull-Up", Sets: 4, Reps: Reps{6, 8}, RestSec: 90},
			{ID: "sat-dip", Name: "Parallel Bar Dip", Sets: 3, Reps: Reps{8, 10}, RestSec: 90},
			{ID: "sat-facepull", Name: "Cable Face Pull", Sets: 3, Reps: Reps{12, 15}, RestSec: 60},
		}},
		{Day: "Sun", IsRestDay: true, Exercises: []RawExercise{}},
	}
}

// demoMealPlan is the built-in 7-day meal template. Each day carries four
// meals so meal-count trimming and padding both have material to work with.
func demoMealPlan() []RawMealDay {
	breakfast := RawMeal{
		Name: "Oat and Berry Bowl", Type: "breakfast",
		Calories: 420, Protein: 22, Carbs: 60, Fats: 10,
		Ingredients: []string{"Rolled Oats", "Greek Yogurt", "Blueberries", "Honey"},
	}
	lunch := RawMeal{
		Name: "Grilled Chicken Grain Salad", Type: "lunch",
		Calories: 560, Protein: 42, Carbs: 52, Fats: 18,
		Ingredients: []string{"Chicken Breast", "Quinoa", "Spinach", "Olive Oil"},
	}
	dinner := RawMeal{
		Name: "Baked Salmon with Sweet Potato", Type: "dinner",
		Calories: 610, Protein: 38, Carbs: 48, Fats: 24,
		Ingredients: []string{"Salmon Fillet", "Sweet Potato", "Broccoli", "Lemon"},
	}
	snack := RawMeal{
		Name: "Cottage Cheese and Almonds", Type: "snack",
		Calories: 240, Protein: 20, Carbs: 12, Fats: 12,
		Ingredients: []string{"Cottage Cheese", "Almonds", "Cinnamon"},
	}

	days := make([]RawMealDay, 0, len(weekOrder))
	for _, day := range weekOrder {
		days = append(days, RawMealDay{
			Day:   string(day),
			Meals: []RawMeal{breakfast, lunch, snack, dinner},
		})
	}
	return days
}
