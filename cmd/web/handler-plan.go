package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/claude/fitcoach/internal/plan"
)

// planRegeneratePOST regenerates the current week with the AI provider.
// Unlike onboarding, a provider failure here surfaces to the user instead of
// silently degrading to demo plans.
func (app *application) planRegeneratePOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := app.planService.GeneratePlans(ctx, false); err != nil {
		if errors.Is(err, plan.ErrGenerationFailed) {
			app.logger.LogAttrs(ctx, slog.LevelWarn, "plan regeneration failed",
				slog.Any("error", err))
			app.flash(r, "Plan generation failed. Your current plan is unchanged.")
			redirect(w, r, "/")
			return
		}
		app.serverError(w, r, fmt.Errorf("regenerate plans: %w", err))
		return
	}

	app.flash(r, "New plan generated.")
	redirect(w, r, "/")
}

// planDemoPOST replaces the current week with the built-in demo plans.
func (app *application) planDemoPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.planService.UseDemoPlans(r.Context()); err != nil {
		app.serverError(w, r, fmt.Errorf("use demo plans: %w", err))
		return
	}

	app.flash(r, "Demo plans loaded.")
	redirect(w, r, "/")
}

// planNextWeekPOST closes out the current week and generates the next one,
// feeding this week's skip reasons back into generation.
func (app *application) planNextWeekPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := app.planService.StartNextWeek(ctx); err != nil {
		app.serverError(w, r, fmt.Errorf("start next week: %w", err))
		return
	}

	app.flash(r, "Next week is ready.")
	redirect(w, r, "/")
}
