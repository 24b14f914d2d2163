package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/claude/fitcoach/internal/e2etest"
	"github.com/claude/fitcoach/internal/logging"
	"github.com/claude/fitcoach/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout         = 30 * time.Second
	maxConcurrentOperations = 20
	numScenarios            = 50
	successRateThreshold    = 95.0
	expectedArgsCount       = 2
	percentageMultiplier    = 100
)

// TestCoachingFlow walks the core loop: onboard, inspect the generated week,
// log a workout outcome and a meal.
func TestCoachingFlow(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, scenarioTimeout)
	defer cancel()

	doc, err := client.GetDoc(ctx, "/onboarding")
	if err != nil {
		return fmt.Errorf("get onboarding: %w", err)
	}

	if doc, err = client.SubmitForm(ctx, doc, "/onboarding", map[string]string{
		"Name":                   "Stress Tester",
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

	return nil
}

// browseAndLogScenario simulates a returning visitor: load the week, open a
// training day, log an outcome, then check the day's meals.
func browseAndLogScenario(ctx context.Context, client *e2etest.Client, index int, logger *slog.Logger) error {
	doc, err := client.GetDoc(ctx, "/")
	if err != nil {
		return fmt.Errorf("get week page: %w", err)
	}

	workoutHref, exists := doc.Find("li.day-card a[href^='/workouts/']").First().Attr("href")
	if !exists {
		return errors.New("no workout link found on the week page")
	}
	if doc, err = client.GetDoc(ctx, workoutHref); err != nil {
		return fmt.Errorf("get workout page: %w", err)
	}

	logAction, exists := doc.Find("form[action$='/log']").First().Attr("action")
	if !exists {
		return fmt.Errorf("no log form found on %s", workoutHref)
	}
	// Alternate outcomes so the feedback and report paths see variety.
	fields := map[string]string{"Outcome": "completed"}
	if index%3 == 0 { //nolint:mnd // every third scenario skips.
		fields["Outcome"] = "skipped"
		fields["Skip reason"] = "Short on time"
	}
	if _, err = client.SubmitForm(ctx, doc, logAction, fields); err != nil {
		return fmt.Errorf("log exercise: %w", err)
	}

	mealsDoc, err := client.GetDoc(ctx, "/meals/Mon")
	if err != nil {
		return fmt.Errorf("get meals page: %w", err)
	}
	mealID, exists := mealsDoc.Find("input[name='mealId']").First().Attr("value")
	if !exists {
		return errors.New("no meal id found on the meals page")
	}
	if _, err = client.PostForm(ctx, "/meals/Mon/log", url.Values{
		"mealId":   {mealID},
		"consumed": {"true"},
	}); err != nil {
		return fmt.Errorf("log meal: %w", err)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Scenario completed", slog.Int("index", index))
	return nil
}

// runLoadTest drives concurrent browse-and-log scenarios against the server.
func runLoadTest(ctx context.Context, serverURL string, logger *slog.Logger) error {
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting load test", slog.Int("num_scenarios", numScenarios))

	var successCount, failureCount int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for i := range numScenarios {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
			defer cancel()

			// Each scenario gets its own session cookie jar.
			client, err := e2etest.NewClient(serverURL)
			if err != nil {
				atomic.AddInt64(&failureCount, 1)
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Failed to create client",
					slog.Int("index", i), slog.Any("error", err))
				return nil
			}

			if err = browseAndLogScenario(scenarioCtx, client, i, logger); err != nil {
				atomic.AddInt64(&failureCount, 1)
				// Log individual failures but don't stop the entire test.
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Scenario failed",
					slog.Int("index", i), slog.Any("error", err))
				return nil
			}

			atomic.AddInt64(&successCount, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount) / float64(numScenarios) * percentageMultiplier

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed",
		slog.Int64("successful", successCount),
		slog.Int64("failed", failureCount),
		slog.Float64("success_rate", successRate))

	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)

	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	serverURL := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		serverURL = "http://" + hostname
	}

	client, err := e2etest.NewClient(serverURL)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}

	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	// Run the smoke flow first so the profile and plans exist before the
	// concurrent scenarios hit the server.
	logger.LogAttrs(ctx, slog.LevelInfo, "Running smoke flow first...")
	if err = TestCoachingFlow(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoke flow failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke flow passed ✓")

	if err = runLoadTest(ctx, serverURL, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)),
		slog.Int("scenarios", numScenarios))
}
