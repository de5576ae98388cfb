package contentgen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"courseforge/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewLLMClient builds the langchaingo model for the configured vendor.
// Which vendor backs content generation is purely a configuration choice;
// everything downstream works against llms.Model.
func NewLLMClient(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai api key cannot be empty")
		}
		return openai.New(
			openai.WithToken(cfg.OpenAI.APIKey),
			openai.WithModel(cfg.OpenAI.Model),
		)
	case "ollama":
		if cfg.Ollama.ServerURL == "" {
			return nil, fmt.Errorf("ollama server url cannot be empty")
		}
		return ollama.New(
			ollama.WithServerURL(cfg.Ollama.ServerURL),
			ollama.WithModel(cfg.Ollama.Model),
			ollama.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	case "googleai":
		if cfg.GoogleAI.APIKey == "" {
			return nil, fmt.Errorf("googleai api key cannot be empty")
		}
		return googleai.New(ctx,
			googleai.WithAPIKey(cfg.GoogleAI.APIKey),
			googleai.WithDefaultModel(cfg.GoogleAI.Model),
		)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
