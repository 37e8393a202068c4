package domain

import "context"

// GenerationResult is what an agent hands back. Degraded is set when the text is the
// offline placeholder rather than model output.
type GenerationResult struct {
	Text     string `json:"text"`
	Degraded bool   `json:"degraded"`
}

// TextGenerator performs one chat completion with a system and a user message and
// returns the first choice's content.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// StudyAgents are the two prompt-specialized calls the study pipeline is built from.
type StudyAgents interface {
	Explain(ctx context.Context, text, level string) GenerationResult
	Quiz(ctx context.Context, explanation, difficulty string, count int) GenerationResult
}
