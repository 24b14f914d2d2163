// Package ai implements plan and report generation against the OpenAI API.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/claude/fitcoach/internal/plan"
	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Client generates weekly plans and reports with OpenAI chat completions.
// It implements plan.Generator.
type Client struct {
	client openai.Client
	logger *slog.Logger
	model  openai.ChatModel
}

// NewClient creates a new OpenAI-backed generator.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		logger: logger,
		model:  openai.ChatModelGPT4o,
	}
}

const planSystemPrompt = `You are a fitness and nutrition coach. Respond with a single JSON object
of the form {"workoutPlan": [...], "mealPlan": [...]} and nothing else.

workoutPlan holds exactly 7 entries, one per weekday Mon..Sun, each
{"day": "Mon", "isRestDay": false, "exercises": [{"id": "...", "name": "...",
"sets": 3, "reps": [8, 12], "restSec": 90}]}. Rest days carry an empty
exercises array.

mealPlan holds exactly 7 entries of {"day": "Mon", "meals": [{"id": "...",
"name": "...", "type": "breakfast", "calories": 400, "protein": 30,
"carbs": 40, "fats": 12, "ingredients": ["..."]}]}.`

const reportSystemPrompt = `You are a fitness and nutrition coach writing a short weekly progress
report in markdown. Summarize adherence, call out skipped workouts and their
reasons, and suggest one focus for next week. Keep it under 300 words.`

// planResponse is the wire shape of the provider's plan payload.
type planResponse struct {
	WorkoutPlan []plan.RawWorkoutDay `json:"workoutPlan"`
	MealPlan    []plan.RawMealDay    `json:"mealPlan"`
}

// GeneratePlans asks the model for a fresh 7-day workout and meal plan.
// Feedback, when present, is passed through as extra request context.
func (c *Client) GeneratePlans(
	ctx context.Context,
	profile plan.UserProfile,
	feedback *plan.Feedback,
) (plan.RawPlans, error) {
	requestID := uuid.NewString()

	prompt, err := buildPlanPrompt(profile, feedback)
	if err != nil {
		return plan.RawPlans{}, fmt.Errorf("build plan prompt: %w", err)
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "requesting plan generation",
		slog.String("request_id", requestID),
		slog.String("model", string(c.model)))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(planSystemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return plan.RawPlans{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return plan.RawPlans{}, errors.New("chat completion returned no choices")
	}

	var response planResponse
	content := stripJSONFences(completion.Choices[0].Message.Content)
	if err = json.Unmarshal([]byte(content), &response); err != nil {
		return plan.RawPlans{}, fmt.Errorf("parse plan response: %w", err)
	}
	if len(response.WorkoutPlan) == 0 || len(response.MealPlan) == 0 {
		return plan.RawPlans{}, errors.New("plan response is missing workout or meal days")
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "plan generation succeeded",
		slog.String("request_id", requestID),
		slog.Int("workout_days", len(response.WorkoutPlan)),
		slog.Int("meal_days", len(response.MealPlan)),
		slog.Int64("total_tokens", completion.Usage.TotalTokens))

	return plan.RawPlans{Workout: response.WorkoutPlan, Meals: response.MealPlan}, nil
}

// WeeklyReport asks the model for a markdown progress report.
func (c *Client) WeeklyReport(
	ctx context.Context,
	profile plan.UserProfile,
	summary plan.WeekSummary,
) (string, error) {
	prompt, err := buildReportPrompt(profile, summary)
	if err != nil {
		return "", fmt.Errorf("build report prompt: %w", err)
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(reportSystemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	markdown := strings.TrimSpace(completion.Choices[0].Message.Content)
	if markdown == "" {
		return "", errors.New("chat completion returned empty report")
	}
	return markdown, nil
}

func buildPlanPrompt(profile plan.UserProfile, feedback *plan.Feedback) (string, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Create a personalized weekly workout and meal plan for this profile:\n")
	sb.Write(profileJSON)
	if feedback != nil && len(feedback.SkipReasons) > 0 {
		sb.WriteString("\n\nLast week the user skipped workouts for these reasons:\n")
		for _, reason := range feedback.SkipReasons {
			sb.WriteString("- ")
			sb.WriteString(reason)
			sb.WriteString("\n")
		}
		sb.WriteString("Adapt the new plan to address them.")
	}
	return sb.String(), nil
}

func buildReportPrompt(profile plan.UserProfile, summary plan.WeekSummary) (string, error) {
	summaryJSON, err := json.Marshal(struct {
		plan.WeekSummary
		Name string `json:"name"`
		Goal string `json:"goal"`
	}{WeekSummary: summary, Name: profile.Name, Goal: profile.Goal})
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}
	return fmt.Sprintf("Write the weekly report for this data:\n%s", summaryJSON), nil
}

// stripJSONFences removes a markdown code fence around a JSON payload. Models
// sometimes wrap responses despite instructions.
func stripJSONFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
