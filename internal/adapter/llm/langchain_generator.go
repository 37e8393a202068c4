package llm

import (
	"context"
	"fmt"

	"study-buddy/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// LangchainGenerator adapts any langchaingo chat model (OpenAI-compatible, Ollama) to
// domain.TextGenerator.
type LangchainGenerator struct {
	model       llms.Model
	modelName   string
	temperature float64
}

var _ domain.TextGenerator = (*LangchainGenerator)(nil)

func NewLangchainGenerator(model llms.Model, modelName string, temperature float64) (*LangchainGenerator, error) {
	if model == nil {
		return nil, fmt.Errorf("langchain model cannot be nil")
	}
	return &LangchainGenerator{
		model:       model,
		modelName:   modelName,
		temperature: temperature,
	}, nil
}

func (g *LangchainGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, userPrompt),
	}

	opts := []llms.CallOption{llms.WithTemperature(g.temperature)}
	if g.modelName != "" {
		opts = append(opts, llms.WithModel(g.modelName))
	}

	resp, err := g.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("langchain generate content failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return cleanCompletion(resp.Choices[0].Content), nil
}
