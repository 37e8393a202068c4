package llm

import (
	"fmt"
	"net/http"

	"study-buddy/internal/config"
	"study-buddy/internal/domain"
	"study-buddy/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const DefaultOllamaServerURL = "http://localhost:11434"

// NewTextGenerator builds the generator selected by cfg.Provider and cfg.Backend.
func NewTextGenerator(cfg config.LLMConfig) (domain.TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGroq:
		logger.Get().Info("Initializing Groq text generator", zap.String("model", cfg.Model))
		return NewGroqGenerator(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)
	case config.ProviderLangchain:
		model, err := newLangchainModel(cfg)
		if err != nil {
			return nil, err
		}
		logger.Get().Info("Initializing langchain text generator",
			zap.String("backend", cfg.Backend),
			zap.String("model", cfg.Model))
		return NewLangchainGenerator(model, cfg.Model, cfg.Temperature)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}

func newLangchainModel(cfg config.LLMConfig) (llms.Model, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Backend {
	case "openai":
		opts := []lcopenai.Option{
			lcopenai.WithToken(cfg.APIKey),
			lcopenai.WithModel(cfg.Model),
			lcopenai.WithHTTPClient(httpClient),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, lcopenai.WithBaseURL(cfg.BaseURL))
		}
		model, err := lcopenai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create LangchainGo OpenAI client: %w", err)
		}
		return model, nil
	case "ollama":
		serverURL := cfg.BaseURL
		if serverURL == "" {
			serverURL = DefaultOllamaServerURL
		}
		model, err := ollama.New(
			ollama.WithServerURL(serverURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create LangchainGo Ollama client: %w", err)
		}
		return model, nil
	default:
		return nil, fmt.Errorf("unsupported langchain backend: %s", cfg.Backend)
	}
}
