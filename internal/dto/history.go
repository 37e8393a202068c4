package dto

import "time"

// SessionSummary is one history row. Preview holds the first 400 characters of the text
// and KeyInsights the first four non-blank lines of the explanation.
type SessionSummary struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	Level        string    `json:"level"`
	Difficulty   string    `json:"difficulty"`
	Mode         string    `json:"mode"`
	NumQuestions int       `json:"num_questions"`
	Characters   int       `json:"characters"`
	Preview      string    `json:"preview"`
	KeyInsights  []string  `json:"key_insights"`
	Degraded     bool      `json:"degraded"`
}

// HistoryResponse lists sessions newest first.
type HistoryResponse struct {
	Sessions []SessionSummary `json:"sessions"`
	Total    int              `json:"total"`
}
