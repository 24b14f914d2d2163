package main

import (
	"log/slog"
	"net/http"

	"github.com/claude/fitcoach/internal/plan"
)

const flashSessionKey = "flash"

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", slog.Any("error", err))
	// Render the error page directly so a broken template can't recurse back
	// into serverError.
	buf, renderErr := app.renderToBuf(r.Context(), "error", newBaseTemplateData(r))
	if renderErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData(r))
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

// flash stores a one-shot notice shown on the next rendered page.
func (app *application) flash(r *http.Request, message string) {
	app.sessionManager.Put(r.Context(), flashSessionKey, message)
}

// popFlash retrieves and clears the pending notice.
func (app *application) popFlash(r *http.Request) string {
	return app.sessionManager.PopString(r.Context(), flashSessionKey)
}

// parseDayParam parses the "day" path parameter from the request URL.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseDayParam(w http.ResponseWriter, r *http.Request) (plan.Weekday, bool) {
	day, ok := plan.ParseWeekday(r.PathValue("day"))
	if !ok {
		http.NotFound(w, r)
		return "", false
	}
	return day, true
}
