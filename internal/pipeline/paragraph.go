package pipeline

import (
	"regexp"
	"strings"
)

var (
	// One or more blank (or whitespace-only) lines separate blocks.
	// Whitespace is Unicode whitespace, so a line holding only U+00A0 or
	// U+3000 still separates.
	blockSeparator = regexp.MustCompile(`\n[\s\v\p{Z}\x{85}]*\n`)

	// Blocks already starting with one of these tags are left as is.
	blockLevelTag = regexp.MustCompile(`^<(h[1-6]|p|div|ul|ol|blockquote|pre|hr|table)`)
)

// ComposeParagraphs splits text into blank-line separated blocks, wraps plain
// blocks in <p> with <br> line breaks, and rejoins blocks with a blank line.
func ComposeParagraphs(text string) string {
	blocks := blockSeparator.Split(text, -1)
	out := make([]string, 0, len(blocks))

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if isStructural(block) {
			out = append(out, block)
			continue
		}
		// Separators were consumed by the split, so every remaining
		// newline is a line break inside the paragraph.
		out = append(out, "<p>"+strings.ReplaceAll(block, "\n", "<br>\n")+"</p>")
	}

	return strings.Join(out, "\n\n")
}

func isStructural(block string) bool {
	return isProtected(block) || blockLevelTag.MatchString(block)
}
