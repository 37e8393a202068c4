package llm

import (
	"context"
	"errors"
	"fmt"

	"study-buddy/internal/domain"
	"study-buddy/internal/logger"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
)

// ErrEmptyCompletion is returned when the provider answers without any choice.
var ErrEmptyCompletion = errors.New("llm returned no choices")

// GroqGenerator talks to Groq's OpenAI-compatible chat completion endpoint.
type GroqGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

var _ domain.TextGenerator = (*GroqGenerator)(nil)

// NewGroqGenerator builds a client for baseURL. Empty baseURL and model fall back to Groq defaults.
func NewGroqGenerator(apiKey, baseURL, model string, temperature float64) (*GroqGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	if model == "" {
		model = DefaultGroqModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &GroqGenerator{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: float32(temperature),
	}, nil
}

// Generate sends one system and one user message and returns the first choice.
func (g *GroqGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: g.temperature,
		},
	)
	if err != nil {
		return "", fmt.Errorf("groq chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	logger.Get().Debug("Groq completion received",
		zap.String("model", g.model),
		zap.Int("total_tokens", resp.Usage.TotalTokens))

	return cleanCompletion(resp.Choices[0].Message.Content), nil
}
