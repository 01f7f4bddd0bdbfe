package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// atxHeading matches 1-6 leading '#', required whitespace, then content.
var atxHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)`)

// ConvertHeaders turns ATX heading lines into <h1>-<h6> elements.
// Setext (underlined) headings are not recognized.
func ConvertHeaders(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := atxHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		level := strconv.Itoa(len(m[1]))
		lines[i] = "<h" + level + ">" + strings.TrimSpace(m[2]) + "</h" + level + ">"
	}
	return strings.Join(lines, "\n")
}
