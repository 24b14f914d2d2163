package main

import (
	"strings"
	"testing"

	"github.com/claude/fitcoach/internal/e2etest"
	"github.com/claude/fitcoach/internal/testhelpers"
)

func Test_application_report(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	completeOnboarding(t, ctx, client)

	t.Run("Shows an empty state before generation", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/report")
		if err != nil {
			t.Fatalf("Failed to get report page: %v", err)
		}

		if got := doc.Find("h1").First().Text(); !strings.Contains(got, "Week 1 report") {
			t.Errorf("Expected report heading, got %q", got)
		}
		if !strings.Contains(doc.Text(), "No report yet") {
			t.Error("Expected empty state message")
		}
	})

	t.Run("Generation failure flashes a notice", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/report")
		if err != nil {
			t.Fatalf("Failed to get report page: %v", err)
		}

		// No AI key configured, so generation must fail gracefully.
		doc, err = client.SubmitForm(ctx, doc, "/report/generate", nil)
		if err != nil {
			t.Fatalf("Failed to submit generate form: %v", err)
		}

		if got := doc.Find(".flash").Text(); !strings.Contains(got, "Report generation failed") {
			t.Errorf("Expected failure flash, got %q", got)
		}
	})
}
