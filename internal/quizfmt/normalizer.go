// Package quizfmt turns the free-form quiz text returned by the model into markdown
// that nests answer options under their question.
package quizfmt

import (
	"fmt"
	"regexp"
	"strings"
)

// LineKind is the classification of one non-blank quiz line.
type LineKind string

const (
	KindQuestion LineKind = "question"
	KindOption   LineKind = "option"
	KindOther    LineKind = "other"
)

// QuizLine is a trimmed, classified line. For questions Text has the marker removed;
// for options and other lines it is the trimmed line unchanged.
type QuizLine struct {
	Kind LineKind `json:"kind"`
	Text string   `json:"text"`
}

// Style selects the markdown shape produced by Render.
type Style string

const (
	StyleBullets  Style = "bullets"
	StyleHeadings Style = "headings"
)

var (
	// Line boundaries: CRLF, LF, CR and the Unicode line and paragraph separators.
	lineBreak = regexp.MustCompile("\r\n|[\n\r\v\f\x1c\x1d\x1e\u0085\u2028\u2029]")

	// Digits and spaces are Unicode-aware, so "Q\u00a0..." and full-width numbering still mark a question.
	questionPattern = regexp.MustCompile(`(?i)^(?:\p{Nd}+[.)]|Question[:\s\p{Zs}]|Q[:\s\p{Zs}])`)
	questionMarker  = regexp.MustCompile(`(?i)^(?:\p{Nd}+[.)][\s\p{Zs}]*|Question[:\s\p{Zs}]*|Q[:\s\p{Zs}]*)`)
	// `|` is accepted alongside `.` and `)` after the option letter.
	optionPattern = regexp.MustCompile(`(?i)^[A-D][.|)]`)
)

// ParseStyle maps a query value to a Style. The empty string selects StyleBullets.
func ParseStyle(name string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(name))) {
	case "", StyleBullets:
		return StyleBullets, nil
	case StyleHeadings:
		return StyleHeadings, nil
	default:
		return "", fmt.Errorf("unknown quiz style %q", name)
	}
}

// Classify splits raw into lines, drops blank ones and labels the rest.
// Question takes precedence over Option.
func Classify(raw string) []QuizLine {
	lines := make([]QuizLine, 0)
	for _, line := range splitLines(raw) {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		switch {
		case questionPattern.MatchString(s):
			lines = append(lines, QuizLine{
				Kind: KindQuestion,
				Text: strings.TrimSpace(questionMarker.ReplaceAllString(s, "")),
			})
		case optionPattern.MatchString(s):
			lines = append(lines, QuizLine{Kind: KindOption, Text: s})
		default:
			lines = append(lines, QuizLine{Kind: KindOther, Text: s})
		}
	}
	return lines
}

// splitLines breaks raw on every line boundary. A trailing boundary does not add a line.
func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	return lineBreak.Split(raw, -1)
}

// Render emits one markdown line per QuizLine, joined with "\n".
func Render(lines []QuizLine, style Style) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, renderLine(l, style))
	}
	return strings.Join(out, "\n")
}

func renderLine(l QuizLine, style Style) string {
	if style == StyleHeadings {
		switch l.Kind {
		case KindQuestion:
			return "### " + l.Text
		case KindOption:
			r := []rune(l.Text)
			return fmt.Sprintf("• **%s** %s", string(r[:2]), strings.TrimSpace(string(r[2:])))
		default:
			return "- " + l.Text
		}
	}

	switch l.Kind {
	case KindQuestion:
		return "- " + l.Text
	case KindOption:
		return "    - " + l.Text
	default:
		return "- " + l.Text
	}
}

// Normalize is Classify followed by Render with StyleBullets. It is not idempotent:
// feeding its output back in re-wraps every line in another bullet.
func Normalize(raw string) string {
	return Render(Classify(raw), StyleBullets)
}
