package pipeline

import "regexp"

var inlineCode = regexp.MustCompile("`([^`]+)`")

// ConvertInlineCode wraps backtick-delimited spans in <code>.
func ConvertInlineCode(text string) string {
	return inlineCode.ReplaceAllString(text, "<code>${1}</code>")
}
