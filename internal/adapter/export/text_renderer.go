package export

import "strings"

const ContentTypeText = "text/plain; charset=utf-8"

// RenderText produces the plain-text export: a title, then each section separated by a
// 60 character rule.
func RenderText(d Document) []byte {
	var b strings.Builder
	b.WriteString(DocumentTitle)
	b.WriteString("\n")
	b.WriteString(sectionRule)
	b.WriteString("\n\n")

	for i, s := range d.sections() {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(sectionRule)
			b.WriteString("\n\n")
		}
		b.WriteString(s.title)
		b.WriteString("\n")
		for _, line := range s.body {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return []byte(b.String())
}
