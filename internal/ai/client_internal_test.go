package ai

import (
	"strings"
	"testing"

	"github.com/claude/fitcoach/internal/plan"
)

func TestStripJSONFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare json",
			content: `{"workoutPlan": []}`,
			want:    `{"workoutPlan": []}`,
		},
		{
			name:    "json fence",
			content: "```json\n{\"workoutPlan\": []}\n```",
			want:    `{"workoutPlan": []}`,
		},
		{
			name:    "plain fence",
			content: "```\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "surrounding whitespace",
			content: "\n\n  {\"a\": 1}  \n",
			want:    `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := stripJSONFences(tt.content); got != tt.want {
				t.Errorf("stripJSONFences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPlanPrompt(t *testing.T) {
	t.Parallel()

	profile := plan.UserProfile{Name: "Alex", TrainingDaysPerWeek: 4}

	prompt, err := buildPlanPrompt(profile, nil)
	if err != nil {
		t.Fatalf("buildPlanPrompt() error = %v", err)
	}
	if !strings.Contains(prompt, `"trainingDaysPerWeek":4`) {
		t.Errorf("prompt missing profile data: %q", prompt)
	}
	if strings.Contains(prompt, "skipped workouts") {
		t.Errorf("prompt mentions feedback without any: %q", prompt)
	}

	feedback := &plan.Feedback{SkipReasons: []string{"Knee pain", "Too tired"}}
	prompt, err = buildPlanPrompt(profile, feedback)
	if err != nil {
		t.Fatalf("buildPlanPrompt() error = %v", err)
	}
	for _, reason := range feedback.SkipReasons {
		if !strings.Contains(prompt, reason) {
			t.Errorf("prompt missing skip reason %q: %q", reason, prompt)
		}
	}
}
