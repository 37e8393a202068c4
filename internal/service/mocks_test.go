package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"study-buddy/internal/adapter/store"
	"study-buddy/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

// --- stubAgents ---
// stubAgents records every call and answers through the optional func fields.
type stubAgents struct {
	mu           sync.Mutex
	explainCalls []string
	quizCalls    []string

	ExplainFunc func(text, level string) domain.GenerationResult
	QuizFunc    func(explanation, difficulty string, count int) domain.GenerationResult
}

func (s *stubAgents) Explain(ctx context.Context, text, level string) domain.GenerationResult {
	s.mu.Lock()
	s.explainCalls = append(s.explainCalls, text)
	s.mu.Unlock()
	if s.ExplainFunc != nil {
		return s.ExplainFunc(text, level)
	}
	return domain.GenerationResult{Text: "Summary: " + level + " explanation.\nKey Points:\n1) one\n2) two\n3) three"}
}

func (s *stubAgents) Quiz(ctx context.Context, explanation, difficulty string, count int) domain.GenerationResult {
	s.mu.Lock()
	s.quizCalls = append(s.quizCalls, explanation)
	s.mu.Unlock()
	if s.QuizFunc != nil {
		return s.QuizFunc(explanation, difficulty, count)
	}
	return domain.GenerationResult{Text: "1. What is it?\nA. This\nB. That\nC. Other\nD. None\nCorrect answer: A"}
}

// scriptedGenerator answers the explainer and quiz prompts with fixed text and records
// the quiz prompt it saw.
type scriptedGenerator struct {
	mu          sync.Mutex
	explanation string
	quiz        string
	quizPrompts []string
}

func (g *scriptedGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if strings.Contains(systemPrompt, "explainer agent") {
		return g.explanation, nil
	}
	g.mu.Lock()
	g.quizPrompts = append(g.quizPrompts, userPrompt)
	g.mu.Unlock()
	return g.quiz, nil
}

var fixedNow = time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

// newTestAccessor returns an accessor over an in-memory store holding one fresh workspace.
func newTestAccessor(workspaceID string) (*WorkspaceAccessor, *store.MemoryWorkspaceStore) {
	st := store.NewMemoryWorkspaceStore(0)
	_ = st.Create(context.Background(), domain.NewWorkspace(workspaceID, fixedNow))
	a := NewWorkspaceAccessor(st)
	a.now = func() time.Time { return fixedNow }
	return a, st
}

func anyArgs() []interface{} {
	return []interface{}{mock.Anything, mock.Anything, mock.Anything}
}
