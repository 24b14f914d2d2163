package main

import (
	"fmt"
	"net/http"

	"github.com/claude/fitcoach/internal/plan"
)

type mealsTemplateData struct {
	BaseTemplateData
	Week  int
	Day   plan.Weekday
	Meals []mealView
}

// mealView pairs a meal with its consumption log.
type mealView struct {
	plan.Meal
	Logged   bool
	Consumed bool
}

func (app *application) mealsGET(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	schedule, err := app.planService.WeeklySchedule(ctx)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("weekly schedule: %w", err))
		return
	}

	var mealDay *plan.MealDay
	for i := range schedule.Meals {
		if schedule.Meals[i].Day == day {
			mealDay = &schedule.Meals[i]
			break
		}
	}
	if mealDay == nil {
		http.NotFound(w, r)
		return
	}

	logs, err := app.planService.MealLogs(ctx)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("meal logs: %w", err))
		return
	}
	logByMeal := make(map[string]plan.MealLog, len(logs))
	for _, log := range logs {
		logByMeal[log.MealID] = log
	}

	meals := make([]mealView, len(mealDay.Meals))
	for i, meal := range mealDay.Meals {
		view := mealView{Meal: meal, Logged: false, Consumed: false}
		if log, logged := logByMeal[meal.ID]; logged {
			view.Logged = true
			view.Consumed = log.Consumed
		}
		meals[i] = view
	}

	data := mealsTemplateData{
		BaseTemplateData: app.newTemplateData(r),
		Week:             schedule.Week,
		Day:              day,
		Meals:            meals,
	}

	app.render(w, r, http.StatusOK, "meals", data)
}

func (app *application) mealLogPOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	mealID := r.Form.Get("mealId")
	if mealID == "" {
		http.Error(w, "missing mealId", http.StatusBadRequest)
		return
	}
	consumed := r.Form.Get("consumed") == "true"

	if err := app.planService.LogMeal(r.Context(), day, mealID, consumed); err != nil {
		app.serverError(w, r, fmt.Errorf("log meal: %w", err))
		return
	}

	redirect(w, r, "/meals/"+string(day))
}
