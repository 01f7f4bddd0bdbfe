package pipeline

import "strings"

// quotePrefix is the only recognized quote marker. A line without it
// always closes the open quote.
const quotePrefix = "> "

type quoteState int

const (
	quoteNone quoteState = iota
	quoteOpen
)

// ConvertBlockquotes merges contiguous "> " lines into one <blockquote>.
// Nested quotes and lazy continuation lines are not supported.
func ConvertBlockquotes(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	state := quoteNone
	var quoted []string

	flush := func() {
		if state != quoteOpen {
			return
		}
		out = append(out, "<blockquote>"+strings.Join(quoted, "\n")+"</blockquote>")
		quoted = nil
		state = quoteNone
	}

	for _, line := range lines {
		if body, ok := strings.CutPrefix(line, quotePrefix); ok {
			state = quoteOpen
			quoted = append(quoted, body)
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()

	return strings.Join(out, "\n")
}
