package main

import (
	"net/url"
	"strings"
	"testing"

	"github.com/claude/fitcoach/internal/e2etest"
	"github.com/claude/fitcoach/internal/testhelpers"
)

func Test_application_meals(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	completeOnboarding(t, ctx, client)

	t.Run("Shows the day's meals", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/meals/Mon")
		if err != nil {
			t.Fatalf("Failed to get meals page: %v", err)
		}

		if got := doc.Find("h1").First().Text(); !strings.Contains(got, "Mon meals") {
			t.Errorf("Expected meals heading, got %q", got)
		}
		// Onboarding asked for 4 meals a day; the demo plan provides exactly 4.
		if got := doc.Find("li.meal-card").Length(); got != 4 {
			t.Errorf("Expected 4 meal cards, got %d", got)
		}
		if doc.Find("h2:contains('Oat and Berry Bowl')").Length() == 0 {
			t.Error("Expected demo breakfast on Monday")
		}
	})

	t.Run("Logs a meal as eaten", func(t *testing.T) {
		// All meal forms share one action, so post the values directly.
		doc, err := client.PostForm(ctx, "/meals/Mon/log", url.Values{
			"mealId":   {"Mon-0-Oat and Berry Bowl"},
			"consumed": {"true"},
		})
		if err != nil {
			t.Fatalf("Failed to log meal: %v", err)
		}

		if doc.Find("p.logged:contains('Eaten')").Length() == 0 {
			t.Error("Expected eaten marker on the meals page")
		}
	})

	t.Run("Logs a meal as skipped", func(t *testing.T) {
		doc, err := client.PostForm(ctx, "/meals/Mon/log", url.Values{
			"mealId":   {"Mon-1-Grilled Chicken Grain Salad"},
			"consumed": {"false"},
		})
		if err != nil {
			t.Fatalf("Failed to log meal: %v", err)
		}

		if doc.Find("p.logged:contains('Skipped')").Length() == 0 {
			t.Error("Expected skipped marker on the meals page")
		}
	})

	t.Run("Missing meal id is rejected", func(t *testing.T) {
		_, err := client.PostForm(ctx, "/meals/Mon/log", url.Values{
			"consumed": {"true"},
		})
		if err == nil {
			t.Error("Expected missing mealId to be rejected")
		}
	})
}
