package main

import (
	"strings"
	"testing"

	"github.com/claude/fitcoach/internal/e2etest"
	"github.com/claude/fitcoach/internal/testhelpers"
)

func Test_application_plan(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	doc := completeOnboarding(t, ctx, client)

	t.Run("Regeneration failure keeps the current plan", func(t *testing.T) {
		// The test server has no AI key, so regeneration must fail without
		// touching the stored plans.
		doc, err = client.SubmitForm(ctx, doc, "/plan/regenerate", nil)
		if err != nil {
			t.Fatalf("Failed to submit regenerate form: %v", err)
		}

		if got := doc.Find(".flash").Text(); !strings.Contains(got, "Plan generation failed") {
			t.Errorf("Expected failure flash, got %q", got)
		}
		if got := doc.Find("h1").First().Text(); !strings.Contains(got, "Week 1") {
			t.Errorf("Expected to stay on week 1, got heading %q", got)
		}
		if got := doc.Find("li.day-card").Length(); got != 7 {
			t.Errorf("Expected the stored plan to survive, got %d day cards", got)
		}
	})

	t.Run("Demo plans can be loaded explicitly", func(t *testing.T) {
		doc, err = client.SubmitForm(ctx, doc, "/plan/demo", nil)
		if err != nil {
			t.Fatalf("Failed to submit demo form: %v", err)
		}

		if got := doc.Find(".demo-banner").Length(); got != 1 {
			t.Errorf("Expected demo banner, got %d", got)
		}
	})

	t.Run("Starting the next week advances the counter", func(t *testing.T) {
		// Log an outcome in week 1 so the leak check below has material.
		workoutDoc, err := client.GetDoc(ctx, "/workouts/Mon")
		if err != nil {
			t.Fatalf("Failed to get workout page: %v", err)
		}
		if _, err = client.SubmitForm(ctx, workoutDoc, "/workouts/Mon/exercises/mon-goblet-squat/log",
			map[string]string{"Outcome": "completed"}); err != nil {
			t.Fatalf("Failed to log exercise: %v", err)
		}

		doc, err = client.SubmitForm(ctx, doc, "/plan/next-week", nil)
		if err != nil {
			t.Fatalf("Failed to submit next week form: %v", err)
		}

		if got := doc.Find("h1").First().Text(); !strings.Contains(got, "Week 2") {
			t.Errorf("Expected week 2 heading, got %q", got)
		}
		if got := doc.Find("li.day-card").Length(); got != 7 {
			t.Errorf("Expected 7 day cards in the new week, got %d", got)
		}
	})

	t.Run("Logs do not leak across weeks", func(t *testing.T) {
		workoutDoc, err := client.GetDoc(ctx, "/workouts/Mon")
		if err != nil {
			t.Fatalf("Failed to get workout page: %v", err)
		}

		if workoutDoc.Find("p.logged").Length() != 0 {
			t.Error("Expected no logged outcomes in a fresh week")
		}
	})
}
