package llm

import "strings"

// cleanCompletion trims the model output and drops a leading <think>...</think> block
// that reasoning models emit before the answer.
func cleanCompletion(raw string) string {
	s := strings.TrimSpace(raw)
	if thinkStart := strings.Index(s, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(s, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			s = strings.TrimSpace(s[:thinkStart] + s[thinkEnd+len("</think>"):])
		}
	}
	return s
}
