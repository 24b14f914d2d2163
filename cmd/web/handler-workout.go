package main

import (
	"fmt"
	"net/http"

	"github.com/claude/fitcoach/internal/plan"
)

type workoutTemplateData struct {
	BaseTemplateData
	Week      int
	Day       plan.Weekday
	IsRestDay bool
	Exercises []exerciseView
}

// exerciseView pairs an exercise with its logged outcome.
type exerciseView struct {
	plan.Exercise
	Status     plan.WorkoutStatus
	SkipReason string
}

func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
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

	var workoutDay *plan.WorkoutDay
	for i := range schedule.Workout {
		if schedule.Workout[i].Day == day {
			workoutDay = &schedule.Workout[i]
			break
		}
	}
	if workoutDay == nil {
		http.NotFound(w, r)
		return
	}

	logs, err := app.planService.WorkoutLogs(ctx)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("workout logs: %w", err))
		return
	}
	logByExercise := make(map[string]plan.WorkoutLog, len(logs))
	for _, log := range logs {
		logByExercise[log.ExerciseID] = log
	}

	exercises := make([]exerciseView, len(workoutDay.Exercises))
	for i, exercise := range workoutDay.Exercises {
		view := exerciseView{Exercise: exercise, Status: "", SkipReason: ""}
		if log, logged := logByExercise[exercise.ID]; logged {
			view.Status = log.Status
			view.SkipReason = log.Reason
		}
		exercises[i] = view
	}

	data := workoutTemplateData{
		BaseTemplateData: app.newTemplateData(r),
		Week:             schedule.Week,
		Day:              day,
		IsRestDay:        workoutDay.IsRestDay,
		Exercises:        exercises,
	}

	app.render(w, r, http.StatusOK, "workout", data)
}

func (app *application) workoutLogPOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	exerciseID := r.PathValue("exerciseID")

	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	status := plan.WorkoutStatus(r.Form.Get("status"))
	reason := r.Form.Get("reason")

	if err := app.planService.LogWorkout(r.Context(), day, exerciseID, status, reason); err != nil {
		app.serverError(w, r, fmt.Errorf("log workout: %w", err))
		return
	}

	redirect(w, r, "/workouts/"+string(day))
}
