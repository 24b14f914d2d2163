package main

import (
	"strings"
	"testing"

	"github.com/claude/fitcoach/internal/e2etest"
	"github.com/claude/fitcoach/internal/testhelpers"
)

func Test_application_onboarding(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("Shows the form with defaults", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/onboarding")
		if err != nil {
			t.Fatalf("Failed to get onboarding page: %v", err)
		}

		// Normalization defaults: 4 training days, 7h sleep, 3 meals.
		if got, _ := doc.Find("input#trainingDaysPerWeek").Attr("value"); got != "4" {
			t.Errorf("Expected default training days 4, got %q", got)
		}
		if got, _ := doc.Find("input#sleepHours").Attr("value"); got != "7" {
			t.Errorf("Expected default sleep hours 7, got %q", got)
		}
		if got, _ := doc.Find("input#mealsPerDay").Attr("value"); got != "3" {
			t.Errorf("Expected default meals per day 3, got %q", got)
		}
	})

	t.Run("Saves the profile and generates the first week", func(t *testing.T) {
		doc := completeOnboarding(t, ctx, client)

		if got := doc.Find("h1").First().Text(); !strings.Contains(got, "Week 1") {
			t.Errorf("Expected to land on the week page, got heading %q", got)
		}
	})

	t.Run("Profile answers persist", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/onboarding")
		if err != nil {
			t.Fatalf("Failed to get onboarding page: %v", err)
		}

		if got, _ := doc.Find("input#name").Attr("value"); got != "Alex" {
			t.Errorf("Expected persisted name %q, got %q", "Alex", got)
		}
		if got, _ := doc.Find("input#age").Attr("value"); got != "31" {
			t.Errorf("Expected persisted age 31, got %q", got)
		}
		selected := doc.Find("select#experience option[selected]").First()
		if got, _ := selected.Attr("value"); got != "intermediate" {
			t.Errorf("Expected persisted experience intermediate, got %q", got)
		}
	})
}
