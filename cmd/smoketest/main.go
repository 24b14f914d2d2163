package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/claude/fitcoach/internal/e2etest"
	"github.com/claude/fitcoach/internal/logging"
	"github.com/claude/fitcoach/internal/testhelpers"
)

// TestCoachingFlow walks the core loop: onboard, inspect the generated week,
// log a workout outcome and a meal.
func TestCoachingFlow(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second) //nolint:mnd // generation can be slow.
	defer cancel()

	doc, err := client.GetDoc(ctx, "/onboarding")
	if err != nil {
		return fmt.Errorf("get onboarding: %w", err)
	}

	if doc, err = client.SubmitForm(ctx, doc, "/onboarding", map[string]string{
		"Name":                   "Smoke Tester",
		"Age":                    "30",
		"Gender":                 "other",
		"Height (cm)":            "175",
		"Weight (kg)":            "70",
		"Experience":             "beginner",
		"Goal":                   "General fitness",
		"Diet type":              "balanced",
		"Any injuries?":          "false",
		"Training days per week": "3",
		"Training location":      "gym",
		"Meals per day":          "3",
		"Sleep hours":            "7",
		"Daily movement":         "medium",
	}); err != nil {
		return fmt.Errorf("submit onboarding: %w", err)
	}

	if doc.Find("li.day-card").Length() != 7 {
		return fmt.Errorf("expected 7 day cards, got %d", doc.Find("li.day-card").Length())
	}

	// Find the first training day and log its first exercise.
	workoutHref, exists := doc.Find("li.day-card a[href^='/workouts/']").First().Attr("href")
	if !exists {
		return fmt.Errorf("no workout link found on the week page")
	}
	if doc, err = client.GetDoc(ctx, workoutHref); err != nil {
		return fmt.Errorf("get workout page: %w", err)
	}
	logAction, exists := doc.Find("form[action$='/log']").First().Attr("action")
	if !exists {
		return fmt.Errorf("no log form found on %s", workoutHref)
	}
	if doc, err = client.SubmitForm(ctx, doc, logAction, map[string]string{
		"Outcome": "completed",
	}); err != nil {
		return fmt.Errorf("log exercise: %w", err)
	}
	if doc.Find("p.logged").Length() == 0 {
		return fmt.Errorf("logged outcome not visible on %s", workoutHref)
	}

	if doc, err = client.GetDoc(ctx, "/meals/Mon"); err != nil {
		return fmt.Errorf("get meals page: %w", err)
	}
	if doc.Find("li.meal-card").Length() == 0 {
		return fmt.Errorf("no meal cards on the meals page")
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestCoachingFlow(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing coaching flow", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
