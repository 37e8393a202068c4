package service

import "fmt"

const (
	DefaultExplanationLevel = "Detailed"
	DefaultQuizDifficulty   = "Medium"
	DefaultQuizQuestions    = 5
)

const (
	explainerSystemPrompt = "You are an explainer agent. Explain concepts in simple English for a beginner student. " +
		"Output JSON-like text containing a short explanation and key points."

	quizSystemPrompt = "You are a quiz generator agent. Create straightforward multiple-choice questions " +
		"appropriate for the requested difficulty."
)

func buildExplainPrompt(text, level string) string {
	if level == "" {
		level = DefaultExplanationLevel
	}
	return fmt.Sprintf(`Read the following study text and produce a concise explanation at the requested level (%s).
1) A short explanation (3-5 sentences).
2) 3-5 key points (numbered list).

Text:
%s`, level, text)
}

func buildQuizPrompt(explanation, difficulty string, count int) string {
	if difficulty == "" {
		difficulty = DefaultQuizDifficulty
	}
	if count <= 0 {
		count = DefaultQuizQuestions
	}
	return fmt.Sprintf(`Using the explanation and key points below, create %d quiz questions at '%s' difficulty.
For each question, provide:
- Question
- 4 options (A, B, C, D)
- Correct answer letter

Explanation and key points:
%s`, count, difficulty, explanation)
}
