package dto

import (
	"time"

	"study-buddy/internal/quizfmt"
)

// StudyRequest is the body of the generate, explain and quiz endpoints.
// @Description Study text and generation settings
type StudyRequest struct {
	Text         string `json:"text"`
	Level        string `json:"level"`
	Difficulty   string `json:"difficulty"`
	Mode         string `json:"mode"`
	NumQuestions int    `json:"num_questions"`
}

// DraftRequest stores the text currently in the editor.
type DraftRequest struct {
	Text string `json:"text"`
}

// RewardResponse reports what an action added to the workspace's progress.
type RewardResponse struct {
	XPAwarded    int `json:"xp_awarded"`
	MinutesAdded int `json:"minutes_added"`
	LevelsGained int `json:"levels_gained"`
	XP           int `json:"xp"`
	Level        int `json:"level"`
}

// SessionResponse is a full study session with its quiz normalized for display.
// @Description Study session
type SessionResponse struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Explanation  string    `json:"explanation"`
	Quiz         string    `json:"quiz"`
	RawQuiz      string    `json:"raw_quiz"`
	Level        string    `json:"level"`
	Difficulty   string    `json:"difficulty"`
	Mode         string    `json:"mode"`
	NumQuestions int       `json:"num_questions"`
	Degraded     bool      `json:"degraded"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// GenerateResponse is returned by the full explain-then-quiz pipeline.
type GenerateResponse struct {
	Session             SessionResponse `json:"session"`
	ExplanationDegraded bool            `json:"explanation_degraded"`
	QuizDegraded        bool            `json:"quiz_degraded"`
	Reward              RewardResponse  `json:"reward"`
}

type ExplainResponse struct {
	Explanation string         `json:"explanation"`
	Degraded    bool           `json:"degraded"`
	Reward      RewardResponse `json:"reward"`
}

// QuizOnlyResponse carries the quiz and, when none existed yet, the explanation it was built from.
type QuizOnlyResponse struct {
	Explanation          string         `json:"explanation"`
	ExplanationGenerated bool           `json:"explanation_generated"`
	Quiz                 string         `json:"quiz"`
	RawQuiz              string         `json:"raw_quiz"`
	Degraded             bool           `json:"degraded"`
	Reward               RewardResponse `json:"reward"`
}

// ResultsResponse is the current explanation and quiz of a workspace.
type ResultsResponse struct {
	Explanation     string        `json:"explanation"`
	Quiz            string        `json:"quiz"`
	Style           quizfmt.Style `json:"style"`
	ExplanationHTML string        `json:"explanation_html,omitempty"`
	QuizHTML        string        `json:"quiz_html,omitempty"`
	LastSessionID   string        `json:"last_session_id,omitempty"`
}

// NormalizeRequest is the body of the stateless normalize endpoint.
type NormalizeRequest struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

type NormalizeResponse struct {
	Lines    []quizfmt.QuizLine `json:"lines"`
	Markdown string             `json:"markdown"`
}

// ExportFile is a rendered study document ready to be downloaded.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
