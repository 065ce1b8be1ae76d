// Package llm sends document text to the Gemini API and turns the model's
// free-text response into structured extraction results. The model is treated
// as a higher-accuracy but unreliable parser: transport failures surface as
// typed errors, while malformed responses degrade to empty results so the
// heuristic parsers can take over.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/parsererror"
)

// Client generates text from a prompt. The production implementation talks to
// Gemini; tests substitute canned responses.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiClient implements Client against the Gemini generateContent API.
type GeminiClient struct {
	apiKey string
	model  string
	logger logging.Logger
}

// NewGeminiClient creates a GeminiClient. An empty model defaults to
// gemini-2.0-flash.
func NewGeminiClient(apiKey, model string, logger logging.Logger) *GeminiClient {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &GeminiClient{apiKey: apiKey, model: model, logger: logger}
}

// GenerateText sends a single generateContent request and returns the
// concatenated text parts of the first candidate.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &parsererror.LLMError{Op: "generate", Err: fmt.Errorf("no API key configured")}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", &parsererror.LLMError{Op: "generate", Err: fmt.Errorf("failed to create client: %w", err)}
	}
	defer func() {
		if err := client.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close Gemini client")
		}
	}()

	model := client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &parsererror.LLMError{Op: "generate", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &parsererror.LLMError{Op: "generate", Err: fmt.Errorf("response contained no candidates")}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
