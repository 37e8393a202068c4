// Package export renders a study session into downloadable documents.
package export

import (
	"fmt"
	"strings"
	"time"
)

const (
	DocumentTitle   = "AI STUDY BUDDY PRO - STUDY SESSION"
	timestampLayout = "2006-01-02 15:04:05"
	filenameLayout  = "20060102_150405"
)

var sectionRule = strings.Repeat("=", 60)

// Document is everything an exported study session contains. Quiz is already normalized.
type Document struct {
	Level        string
	Difficulty   string
	Mode         string
	GeneratedAt  time.Time
	OriginalText string
	Explanation  string
	Quiz         string
}

// Filename returns study_session_YYYYMMDD_HHMMSS.<ext> for the document's timestamp.
func (d Document) Filename(ext string) string {
	return fmt.Sprintf("study_session_%s.%s", d.GeneratedAt.Format(filenameLayout), ext)
}

// TruncateText keeps the first limit characters and appends "..." when anything was cut.
func TruncateText(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

type section struct {
	title string
	body  []string
}

// sections is the shared layout of the text and PDF renditions.
func (d Document) sections() []section {
	return []section{
		{
			title: "METADATA:",
			body: []string{
				"• Explanation Level: " + d.Level,
				"• Quiz Difficulty: " + d.Difficulty,
				"• Learning Mode: " + d.Mode,
				"• Generated: " + d.GeneratedAt.Format(timestampLayout),
			},
		},
		{title: "ORIGINAL TEXT:", body: []string{d.OriginalText}},
		{title: "SIMPLIFIED EXPLANATION:", body: []string{d.Explanation}},
		{title: fmt.Sprintf("QUIZ QUESTIONS (%s Level):", d.Difficulty), body: []string{d.Quiz}},
	}
}
