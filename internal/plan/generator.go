package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/fitweek/fitweek/internal/errors"
	"github.com/fitweek/fitweek/internal/profile"
)

// ErrEmptyCompletion is returned when the completion service answers without
// a usable plan. The request is not retried; a silent retry could mask a
// systemic prompt or schema problem.
var ErrEmptyCompletion = errors.NewSentinel("completion service returned an empty plan")

const defaultModel = openai.ChatModelGPT4o2024_08_06

// Generator requests candidate weekly plans from the OpenAI API. It makes a
// single structured request per plan and escalates failures immediately.
type Generator struct {
	client  openai.Client
	model   openai.ChatModel
	catalog *Catalog
	logger  *slog.Logger
}

// NewGenerator creates a plan generator. An empty model selects the default.
func NewGenerator(apiKey string, model string, catalog *Catalog, logger *slog.Logger) *Generator {
	g := &Generator{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   defaultModel,
		catalog: catalog,
		logger:  logger,
	}
	if model != "" {
		g.model = openai.ChatModel(model)
	}
	return g
}

// Generate requests one candidate plan for the profile. The result is raw:
// it has been decoded leniently but not normalized or checked.
func (g *Generator) Generate(ctx context.Context, prof profile.Profile) (*WeeklyPlan, error) {
	prompt := buildPrompt(prof, g.catalog)

	g.logger.LogAttrs(ctx, slog.LevelDebug, "requesting plan candidate",
		slog.String("model", string(g.model)),
		slog.String("activity_level", string(prof.ActivityLevel)),
		slog.String("fitness_goal", string(prof.FitnessGoal)))

	chat, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "weekly_workout_plan",
					Description: openai.String("A seven day workout plan, Monday through Sunday"),
					Schema:      planJSONSchema(),
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, ErrEmptyCompletion
	}

	plan, err := decodePlan([]byte(chat.Choices[0].Message.Content))
	if err != nil {
		return nil, errors.Wrap(err, "decode plan candidate",
			slog.String("model", string(g.model)))
	}
	return plan, nil
}

const systemPrompt = `You are a certified personal trainer. You design weekly workout plans as strict JSON matching the provided schema. Every day from Monday to Sunday must contain at least one entry. A rest day is a single entry named "Rest" with sets, reps, caloriesBurned and videoLink all null.`

// Workout-day targets phrased for the prompt, ordered from least to most
// active. Preferring fewer rest days moves the profile up one tier.
var workoutDayTiers = []string{"3-4", "4-5", "5-6", "6"}

func workoutDaysFor(prof profile.Profile) string {
	tier := 0
	switch prof.ActivityLevel {
	case profile.ActivityModeratelyActive:
		tier = 1
	case profile.ActivityVeryActive, profile.ActivityExtraActive:
		tier = 2
	}
	if prof.PreferFewerRestDays {
		tier++
	}
	return workoutDayTiers[tier]
}

var goalGuidance = map[profile.Goal]string{
	profile.GoalWeightLoss:     "favour higher rep ranges (12-15) and include cardio sessions",
	profile.GoalWeightGain:     "favour compound lifts in the 6-10 rep range with progressive overload",
	profile.GoalMuscleBuilding: "favour hypertrophy rep ranges (8-12) across all major muscle groups",
	profile.GoalRecomposition:  "mix strength work in the 6-10 rep range with cardio intervals",
	profile.GoalToning:         "favour moderate weights in the 12-15 rep range with short rest periods",
}

func buildPrompt(prof profile.Profile, catalog *Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a weekly workout plan for this person:\n")
	fmt.Fprintf(&b, "- Weight: %.1f kg\n", prof.WeightKg)
	fmt.Fprintf(&b, "- Age: %d\n", prof.Age)
	fmt.Fprintf(&b, "- Activity level: %s\n", prof.ActivityLevel)
	fmt.Fprintf(&b, "- Fitness goal: %s\n\n", prof.FitnessGoal)

	fmt.Fprintf(&b, "Schedule %s workout days this week; every other day is a rest day.\n", workoutDaysFor(prof))
	fmt.Fprintf(&b, "For the %s goal, %s.\n\n", prof.FitnessGoal, goalGuidance[prof.FitnessGoal])

	b.WriteString(`Rules:
- reps is either a numeric range like "8-12" or a duration like "20 min".
- caloriesBurned is per set: between 2 and 4 for stretching, warm-up, cool-down and yoga entries, between 6 and 30 for everything else.
- videoLink is null for Rest, Warm-Up, Cool-Down and stretch entries. For all other entries use exactly https://www.youtube.com/results?search_query=<exercise name with spaces replaced by +>+tutorial
`)

	if catalog != nil && catalog.Len() > 0 {
		fmt.Fprintf(&b, "\nPrefer exercises from this list: %s.\n", strings.Join(catalog.Names(), ", "))
	}

	return b.String()
}

// planJSONSchema declares the strict output contract: seven named arrays of
// exercise objects.
func planJSONSchema() map[string]any {
	entrySchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercise":       map[string]any{"type": "string"},
			"sets":           map[string]any{"type": []string{"integer", "null"}},
			"reps":           map[string]any{"type": []string{"string", "null"}},
			"notes":          map[string]any{"type": "string"},
			"videoLink":      map[string]any{"type": []string{"string", "null"}},
			"caloriesBurned": map[string]any{"type": []string{"number", "null"}},
		},
		"required":             []string{"exercise", "sets", "reps", "notes", "videoLink", "caloriesBurned"},
		"additionalProperties": false,
	}

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	properties := make(map[string]any, len(days))
	for _, day := range days {
		properties[day] = map[string]any{
			"type":  "array",
			"items": entrySchema,
		}
	}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             days,
		"additionalProperties": false,
	}
}
