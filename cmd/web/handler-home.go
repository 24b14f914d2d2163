package main

import (
	"errors"
	"net/http"

	"github.com/claude/fitcoach/internal/plan"
)

const percentMultiplier = 100

type homeTemplateData struct {
	BaseTemplateData
	Week      int
	DemoPlans bool
	HasPlans  bool
	Days      []dayView
}

// dayView summarizes one weekday on the home page.
type dayView struct {
	// Day is the weekday name (e.g. "Mon")
	Day plan.Weekday
	// IsRestDay indicates a workout rest day
	IsRestDay bool
	// ExerciseCount is the number of planned exercises
	ExerciseCount int
	// LoggedCount is the number of exercises with a logged outcome
	LoggedCount int
	// ProgressPercent is the logging percentage (0-100)
	ProgressPercent int
	// MealCount is the number of planned meals
	MealCount int
	// ConsumedCount is the number of meals logged as consumed
	ConsumedCount int
}

func toDays(schedule plan.Schedule, workoutLogs []plan.WorkoutLog, mealLogs []plan.MealLog) []dayView {
	loggedExercises := make(map[string]bool, len(workoutLogs))
	for _, log := range workoutLogs {
		loggedExercises[log.ExerciseID] = true
	}
	consumedMeals := make(map[string]bool, len(mealLogs))
	for _, log := range mealLogs {
		if log.Consumed {
			consumedMeals[log.MealID] = true
		}
	}

	mealsByDay := make(map[plan.Weekday]plan.MealDay, len(schedule.Meals))
	for _, day := range schedule.Meals {
		mealsByDay[day.Day] = day
	}

	days := make([]dayView, len(schedule.Workout))
	for i, workoutDay := range schedule.Workout {
		view := dayView{
			Day:           workoutDay.Day,
			IsRestDay:     workoutDay.IsRestDay,
			ExerciseCount: len(workoutDay.Exercises),
		}
		for _, exercise := range workoutDay.Exercises {
			if loggedExercises[exercise.ID] {
				view.LoggedCount++
			}
		}
		if view.ExerciseCount > 0 {
			view.ProgressPercent = (view.LoggedCount * percentMultiplier) / view.ExerciseCount
		}

		mealDay := mealsByDay[workoutDay.Day]
		view.MealCount = len(mealDay.Meals)
		for _, meal := range mealDay.Meals {
			if consumedMeals[meal.ID] {
				view.ConsumedCount++
			}
		}

		days[i] = view
	}
	return days
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := app.planService.Profile(ctx); err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			redirect(w, r, "/onboarding")
			return
		}
		app.serverError(w, r, err)
		return
	}

	data := homeTemplateData{
		BaseTemplateData: app.newTemplateData(r),
		Week:             1,
		DemoPlans:        false,
		HasPlans:         false,
		Days:             nil,
	}

	schedule, err := app.planService.WeeklySchedule(ctx)
	if err != nil && !errors.Is(err, plan.ErrNotFound) {
		app.serverError(w, r, err)
		return
	}
	if err == nil {
		workoutLogs, logErr := app.planService.WorkoutLogs(ctx)
		if logErr != nil {
			app.serverError(w, r, logErr)
			return
		}
		mealLogs, logErr := app.planService.MealLogs(ctx)
		if logErr != nil {
			app.serverError(w, r, logErr)
			return
		}

		data.Week = schedule.Week
		data.DemoPlans = schedule.DemoPlans
		data.HasPlans = true
		data.Days = toDays(schedule, workoutLogs, mealLogs)
	}

	app.render(w, r, http.StatusOK, "home", data)
}
