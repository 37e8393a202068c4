package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"study-buddy/internal/domain"
	"study-buddy/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// FallbackText is returned in place of model output whenever the provider cannot be reached.
const FallbackText = "[LLM unavailable - running in offline mode].\n\n" +
	"Summary: Unable to contact LLM. Please check GROQ_API_KEY and network.\n" +
	"Key Points:\n" +
	"1) Unable to generate explanation due to connection error.\n"

// LLMGateway runs the explainer and quiz agents on top of a TextGenerator.
// It never returns an error: failures become FallbackText with Degraded set.
type LLMGateway struct {
	generator domain.TextGenerator
	timeout   time.Duration
	sfGroup   singleflight.Group
}

var _ domain.StudyAgents = (*LLMGateway)(nil)

func NewLLMGateway(generator domain.TextGenerator, timeout time.Duration) *LLMGateway {
	return &LLMGateway{
		generator: generator,
		timeout:   timeout,
	}
}

// Complete performs one bounded chat completion. Concurrent calls with the same prompts
// share a single upstream request.
func (g *LLMGateway) Complete(ctx context.Context, systemPrompt, userPrompt string) domain.GenerationResult {
	l := logger.Get()
	key := promptKey(systemPrompt, userPrompt)

	res, err, shared := g.sfGroup.Do(key, func() (result interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("text generator panicked: %v", r)
			}
		}()

		// The call is shared by every waiter, so one caller going away must not cancel it.
		callCtx := context.WithoutCancel(ctx)
		if g.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(callCtx, g.timeout)
			defer cancel()
		}

		start := time.Now()
		text, genErr := g.generator.Generate(callCtx, systemPrompt, userPrompt)
		if genErr != nil {
			return nil, genErr
		}
		l.Debug("LLM completion finished", zap.Duration("duration", time.Since(start)), zap.Int("length", len(text)))
		return text, nil
	})
	if err != nil {
		l.Error("LLM call failed, using offline fallback",
			zap.Error(err),
			zap.Bool("shared", shared),
			zap.String("prompt_key", key[:12]))
		return domain.GenerationResult{Text: FallbackText, Degraded: true}
	}

	return domain.GenerationResult{Text: res.(string)}
}

// Explain asks the explainer agent for a short explanation and numbered key points.
func (g *LLMGateway) Explain(ctx context.Context, text, level string) domain.GenerationResult {
	return g.Complete(ctx, explainerSystemPrompt, buildExplainPrompt(text, level))
}

// Quiz asks the quiz agent for count multiple-choice questions about explanation.
// The reply is returned as-is; its structure is not checked.
func (g *LLMGateway) Quiz(ctx context.Context, explanation, difficulty string, count int) domain.GenerationResult {
	return g.Complete(ctx, quizSystemPrompt, buildQuizPrompt(explanation, difficulty, count))
}

func promptKey(systemPrompt, userPrompt string) string {
	h := sha256.New()
	h.Write([]byte(systemPrompt))
	h.Write([]byte{0})
	h.Write([]byte(userPrompt))
	return hex.EncodeToString(h.Sum(nil))
}
