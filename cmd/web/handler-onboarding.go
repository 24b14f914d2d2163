package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/claude/fitcoach/internal/plan"
)

type onboardingTemplateData struct {
	BaseTemplateData
	Profile  plan.UserProfile
	Weekdays []plan.Weekday
}

func (app *application) onboardingGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.planService.Profile(r.Context())
	if err != nil && !errors.Is(err, plan.ErrNotFound) {
		app.serverError(w, r, err)
		return
	}

	data := onboardingTemplateData{
		BaseTemplateData: app.newTemplateData(r),
		Profile:          profile.WithDefaults(),
		Weekdays:         plan.WeekOrder(),
	}

	app.render(w, r, http.StatusOK, "onboarding", data)
}

func (app *application) onboardingPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	profile := profileFromForm(r)

	ctx := r.Context()
	if err := app.planService.SaveProfile(ctx, profile); err != nil {
		app.serverError(w, r, fmt.Errorf("save profile: %w", err))
		return
	}

	// Generate the first week right away. AI failure degrades to demo plans
	// rather than blocking onboarding.
	if err := app.planService.GeneratePlans(ctx, true); err != nil {
		app.serverError(w, r, fmt.Errorf("generate plans: %w", err))
		return
	}

	app.logger.LogAttrs(ctx, slog.LevelInfo, "onboarding completed")
	redirect(w, r, "/")
}

// profileFromForm assembles a profile from onboarding form fields. Malformed
// numbers fall back to zero values, which normalization replaces with
// documented defaults.
func profileFromForm(r *http.Request) plan.UserProfile {
	var restDays []plan.Weekday
	for _, name := range r.Form["restDays"] {
		if day, ok := plan.ParseWeekday(name); ok {
			restDays = append(restDays, day)
		}
	}

	var injuryDetails *string
	hasInjuries := r.Form.Get("injuriesHasIssues") == "true"
	if details := r.Form.Get("injuriesDetails"); hasInjuries && details != "" {
		injuryDetails = &details
	}

	return plan.UserProfile{
		Name:                r.Form.Get("name"),
		Age:                 parseIntField(r.Form.Get("age")),
		Gender:              r.Form.Get("gender"),
		HeightCm:            parseFloatField(r.Form.Get("height")),
		WeightKg:            parseFloatField(r.Form.Get("weight")),
		Experience:          r.Form.Get("experience"),
		Goal:                r.Form.Get("goal"),
		DietType:            r.Form.Get("dietType"),
		Injuries:            plan.InjuryStatus{HasIssues: hasInjuries, Details: injuryDetails},
		TrainingDaysPerWeek: parseIntField(r.Form.Get("trainingDaysPerWeek")),
		RestDays:            restDays,
		TrainingLocation:    plan.TrainingLocation(r.Form.Get("trainingLocation")),
		MealsPerDay:         parseIntField(r.Form.Get("mealsPerDay")),
		SleepHours:          parseFloatField(r.Form.Get("sleepHours")),
		DailyMovement:       plan.MovementLevel(r.Form.Get("dailyMovement")),
	}
}

func parseIntField(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}

func parseFloatField(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}
