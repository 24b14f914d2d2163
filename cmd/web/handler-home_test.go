package main

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/claude/fitcoach/internal/e2etest"
	"github.com/claude/fitcoach/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "FITCOACH_SQLITE_URL":
		return ":memory:", true
	case "FITCOACH_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

// completeOnboarding submits the onboarding form and returns the resulting
// home page document.
func completeOnboarding(t *testing.T, ctx context.Context, client *e2etest.Client) *goquery.Document {
	t.Helper()

	doc, err := client.GetDoc(ctx, "/onboarding")
	if err != nil {
		t.Fatalf("Failed to get onboarding page: %v", err)
	}

	doc, err = client.SubmitForm(ctx, doc, "/onboarding", map[string]string{
		"Name":                   "Alex",
		"Age":                    "31",
		"Gender":                 "female",
		"Height (cm)":            "170",
		"Weight (kg)":            "65",
		"Experience":             "intermediate",
		"Goal":                   "Build muscle",
		"Diet type":              "balanced",
		"Any injuries?":          "false",
		"Training days per week": "4",
		"Training location":      "gym",
		"Meals per day":          "4",
		"Sleep hours":            "7",
		"Daily movement":         "medium",
	})
	if err != nil {
		t.Fatalf("Failed to submit onboarding form: %v", err)
	}
	return doc
}

func Test_application_home(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("Redirects to onboarding without a profile", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if got := doc.Find("h1").First().Text(); !strings.Contains(got, "Tell us about yourself") {
			t.Errorf("Expected onboarding page, got heading %q", got)
		}
	})

	t.Run("Shows the week after onboarding", func(t *testing.T) {
		doc := completeOnboarding(t, ctx, client)

		if got := doc.Find("h1").First().Text(); !strings.Contains(got, "Week 1") {
			t.Errorf("Expected week heading, got %q", got)
		}
		if got := doc.Find("li.day-card").Length(); got != 7 {
			t.Errorf("Expected 7 day cards, got %d", got)
		}
		// Without an AI key onboarding falls back to demo plans.
		if got := doc.Find(".demo-banner").Length(); got != 1 {
			t.Errorf("Expected demo banner, got %d", got)
		}
	})
}

func Test_crossOriginProtection(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	// Simulate a browser sending a cross-origin form submission.
	maliciousClient, err := e2etest.NewClientWithSecFetchSite(server.URL(), "cross-site")
	if err != nil {
		t.Fatalf("Failed to create malicious client: %v", err)
	}

	doc, err := maliciousClient.GetDoc(ctx, "/onboarding")
	if err != nil {
		t.Fatalf("Failed to get onboarding page: %v", err)
	}

	_, err = maliciousClient.SubmitForm(ctx, doc, "/onboarding", map[string]string{
		"Name": "Mallory",
	})
	if err == nil {
		t.Error("Expected cross-origin form submission to be blocked, but it succeeded")
	}
	if err != nil && !strings.Contains(err.Error(), "status code: 403") {
		t.Errorf("Expected status error 403 for blocked request, got: %v", err)
	}
}
