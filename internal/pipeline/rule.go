package pipeline

import "regexp"

var (
	dashRule = regexp.MustCompile(`(?m)^---+$`)
	starRule = regexp.MustCompile(`(?m)^\*\*\*+$`)
)

// ConvertHorizontalRules replaces lines made only of three or more '-'
// or three or more '*' with <hr>.
func ConvertHorizontalRules(text string) string {
	text = dashRule.ReplaceAllString(text, "<hr>")
	return starRule.ReplaceAllString(text, "<hr>")
}
