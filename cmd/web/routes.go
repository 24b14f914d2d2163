package main

import (
	"fmt"
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(shared(next))))
		}
		// mustProfile redirects to onboarding until a profile exists.
		mustProfile = func(next http.Handler) http.Handler {
			return session(app.requireProfile(next))
		}
	)

	mux.Handle("GET /onboarding", session(http.HandlerFunc(app.onboardingGET)))
	mux.Handle("POST /onboarding", session(http.HandlerFunc(app.onboardingPOST)))

	mux.Handle("GET /workouts/{day}", mustProfile(http.HandlerFunc(app.workoutGET)))
	mux.Handle("POST /workouts/{day}/exercises/{exerciseID}/log",
		mustProfile(http.HandlerFunc(app.workoutLogPOST)))

	mux.Handle("GET /meals/{day}", mustProfile(http.HandlerFunc(app.mealsGET)))
	mux.Handle("POST /meals/{day}/log", mustProfile(http.HandlerFunc(app.mealLogPOST)))

	mux.Handle("POST /plan/regenerate", mustProfile(http.HandlerFunc(app.planRegeneratePOST)))
	mux.Handle("POST /plan/demo", mustProfile(http.HandlerFunc(app.planDemoPOST)))
	mux.Handle("POST /plan/next-week", mustProfile(http.HandlerFunc(app.planNextWeekPOST)))

	mux.Handle("GET /report", mustProfile(http.HandlerFunc(app.reportGET)))
	mux.Handle("POST /report/generate", mustProfile(http.HandlerFunc(app.reportGeneratePOST)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	// File server with custom 404 handling
	fileServerHandler, err := app.fileServerHandler()
	if err != nil {
		return nil, fmt.Errorf("fileServerHandler: %w", err)
	}
	mux.Handle("/", fileServerHandler)

	return mux, nil
}

// requireProfile redirects to onboarding when no profile has been saved yet.
func (app *application) requireProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := app.planService.Profile(r.Context()); err != nil {
			redirect(w, r, "/onboarding")
			return
		}
		next.ServeHTTP(w, r)
	})
}
