package coach

import (
	"context"
	"errors"

	"fitvibe/fitness-coach/internal/config"
	"fitvibe/fitness-coach/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Completer is the opaque text-generation capability the orchestrator calls:
// one prompt in, one text completion out. Failures are not classified here.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiCompleter implements Completer over the Google Gemini API.
type GeminiCompleter struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiCompleter creates a Gemini-backed completer. The API key must be
// present; config validation rejects a missing key before this is reached.
func NewGeminiCompleter(ctx context.Context, cfg config.GeminiConfig) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	logger.Info("Gemini client initialized", "model", cfg.Model)
	return &GeminiCompleter{
		client: client,
		model:  client.GenerativeModel(cfg.Model),
	}, nil
}

func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from model")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response part type")
	}
	return string(text), nil
}

// Close releases the underlying API client.
func (g *GeminiCompleter) Close() error {
	return g.client.Close()
}
