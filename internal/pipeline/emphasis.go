package pipeline

import "regexp"

// inlineRule is a single pattern substitution.
type inlineRule struct {
	pattern     *regexp.Regexp
	replacement string
}

func applyRules(text string, rules []inlineRule) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

// emphasisRules run in order. Bold must precede italic so that **x** is
// not consumed by the single-asterisk rule.
var emphasisRules = []inlineRule{
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "<strong>${1}</strong>"},
	{regexp.MustCompile(`__(.+?)__`), "<strong>${1}</strong>"},
	{regexp.MustCompile(`\*([^*]+?)\*`), "<em>${1}</em>"},
	{regexp.MustCompile(`_([^_]+?)_`), "<em>${1}</em>"},
	{regexp.MustCompile(`~~(.+?)~~`), "<del>${1}</del>"},
}

// ConvertEmphasis converts bold, italic and strikethrough spans.
// Unbalanced delimiters are left as literal text.
func ConvertEmphasis(text string) string {
	return applyRules(text, emphasisRules)
}
