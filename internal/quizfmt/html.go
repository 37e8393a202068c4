package quizfmt

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// ToHTML renders normalized quiz or explanation markdown for the results view.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
