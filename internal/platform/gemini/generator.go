package gemini

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/studyforge/planner-api/internal/breakdown"

	"google.golang.org/genai"
)

// defaultModel is used when the configuration does not name one.
const defaultModel = "gemini-2.5-flash"

// defaultPromptTemplate frames the request as an academic-advisor task.
// The JSON shape itself is enforced by the declared response schema, not
// by prompt wording.
const defaultPromptTemplate = `As an expert academic advisor, break down the following subject into smaller, manageable sub-topics. For each sub-topic, provide a difficulty rating on a scale of 1 (easiest) to 10 (hardest), and recommend a number of hours to study it. Subject: "{{.Name}}", Description: "{{.Description}}". Return the data as a JSON array of objects.`

// topicListSchema constrains the model output to an ordered array of
// sub-topic objects matching the wire contract.
var topicListSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"topic":      {Type: genai.TypeString},
			"difficulty": {Type: genai.TypeInteger},
			"studyHours": {Type: genai.TypeNumber},
		},
		Required: []string{"topic", "difficulty", "studyHours"},
	},
}

// promptData is the data passed to the prompt template.
type promptData struct {
	Name        string
	Description string
}

// Config contains configuration for the Gemini generator.
type Config struct {
	// APIKey authenticates against the Gemini API. Required.
	APIKey string

	// Model is the Gemini model name. Empty means defaultModel.
	Model string

	// Logger for structured logging. Nil means slog.Default().
	Logger *slog.Logger
}

// Generator implements breakdown.Generator on top of the Gemini API.
type Generator struct {
	client         *genai.Client
	model          string
	promptTemplate *template.Template
	logger         *slog.Logger
}

var _ breakdown.Generator = (*Generator)(nil)

// NewGenerator creates a Generator with the provided configuration.
// Returns breakdown.ErrInvalidConfig if the API key is missing or the
// client cannot be constructed.
func NewGenerator(ctx context.Context, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", breakdown.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	promptTemplate, err := template.New("breakdown").Parse(defaultPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", breakdown.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", breakdown.ErrInvalidConfig, err)
	}

	return &Generator{
		client:         client,
		model:          cfg.Model,
		promptTemplate: promptTemplate,
		logger:         cfg.Logger,
	}, nil
}

// BreakdownSubject asks Gemini to decompose the subject and validates the
// structured response. A single attempt is made; no retry.
func (g *Generator) BreakdownSubject(ctx context.Context, name, description string) ([]breakdown.TopicEstimate, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: subject name cannot be empty", breakdown.ErrBreakdownFailed)
	}

	var promptBuffer bytes.Buffer
	if err := g.promptTemplate.Execute(&promptBuffer, promptData{Name: name, Description: description}); err != nil {
		return nil, fmt.Errorf("%w: execute prompt template: %v", breakdown.ErrBreakdownFailed, err)
	}
	prompt := promptBuffer.String()

	g.logger.InfoContext(ctx, "requesting subject breakdown",
		"model", g.model,
		"subject", name,
		"prompt_length", len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   topicListSchema,
		})
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"subject", name,
			"error", err)
		return nil, fmt.Errorf("%w: %v", breakdown.ErrServiceFailure, err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", breakdown.ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: subject %q", breakdown.ErrContentBlocked, name)
	}

	topics, err := parseTopics(resp.Text())
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini response failed validation",
			"subject", name,
			"error", err)
		return nil, err
	}

	g.logger.InfoContext(ctx, "subject breakdown succeeded",
		"subject", name,
		"topic_count", len(topics))

	return topics, nil
}
