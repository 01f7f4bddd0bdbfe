package pipeline

import "regexp"

var linkRules = []inlineRule{
	// [label](url)
	{regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`), `<a href="${2}">${1}</a>`},
	// <http://...> and <https://...>
	{regexp.MustCompile(`<(https?://[^>]+)>`), `<a href="${1}">${1}</a>`},
}

// ConvertLinks converts inline links and angle-bracket autolinks.
// Reference-style links and link titles are not supported.
func ConvertLinks(text string) string {
	return applyRules(text, linkRules)
}
