package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/claude/fitcoach/internal/plan"
)

type reportTemplateData struct {
	BaseTemplateData
	Week      int
	HasReport bool
	Markdown  string
}

func (app *application) reportGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	schedule, err := app.planService.WeeklySchedule(ctx)
	if err != nil && !errors.Is(err, plan.ErrNotFound) {
		app.serverError(w, r, fmt.Errorf("weekly schedule: %w", err))
		return
	}
	week := 1
	if err == nil {
		week = schedule.Week
	}

	data := reportTemplateData{
		BaseTemplateData: app.newTemplateData(r),
		Week:             week,
		HasReport:        false,
		Markdown:         "",
	}

	markdown, err := app.planService.Report(ctx, week)
	if err != nil && !errors.Is(err, plan.ErrNotFound) {
		app.serverError(w, r, fmt.Errorf("get report: %w", err))
		return
	}
	if err == nil {
		data.HasReport = true
		data.Markdown = markdown
	}

	app.render(w, r, http.StatusOK, "report", data)
}

func (app *application) reportGeneratePOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := app.planService.GenerateWeeklyReport(ctx); err != nil {
		if errors.Is(err, plan.ErrGenerationFailed) {
			app.logger.LogAttrs(ctx, slog.LevelWarn, "report generation failed",
				slog.Any("error", err))
			app.flash(r, "Report generation failed. Try again later.")
			redirect(w, r, "/report")
			return
		}
		app.serverError(w, r, fmt.Errorf("generate report: %w", err))
		return
	}

	redirect(w, r, "/report")
}
