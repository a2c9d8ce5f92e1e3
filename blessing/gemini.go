package blessing

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/genai"

	"github.com/pthm-cable/wishsky/config"
)

// GeminiGenerator generates text with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a client for the given key and model.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends a single-turn prompt and returns the response text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", g.model, err)
	}
	return resp.Text(), nil
}

// GeneratorFromEnv builds a Gemini generator when the configured API key
// variable is set. Returns nil (fallbacks only) when it is not.
func GeneratorFromEnv(ctx context.Context, cfg *config.Config) (Generator, error) {
	key := os.Getenv(cfg.Blessing.APIKeyEnv)
	if key == "" {
		slog.Warn("blessing generator disabled", "env", cfg.Blessing.APIKeyEnv)
		return nil, nil
	}
	gen, err := NewGeminiGenerator(ctx, key, cfg.Blessing.Model)
	if err != nil {
		return nil, err
	}
	slog.Info("blessing generator ready", "model", cfg.Blessing.Model)
	return gen, nil
}
