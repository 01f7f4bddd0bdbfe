package pipeline

import (
	"regexp"
	"strings"
)

// fencedCodeBlock matches ```lang\n...\n``` lazily so the first closing
// fence ends the block. The language tag (letters, digits and '_' in any
// script) is matched and discarded.
var fencedCodeBlock = regexp.MustCompile("(?s)```([\\p{L}\\p{N}_]+)?\\n(.*?)\\n```")

// codeState tracks the indented-code scan.
type codeState int

const (
	codeNone codeState = iota
	codeIndented
)

// ConvertCodeBlocks replaces fenced code blocks, then runs of indented lines,
// with protected <pre><code> blocks. Content is emitted raw.
// An unterminated fence is left as literal text.
func ConvertCodeBlocks(text string) string {
	text = fencedCodeBlock.ReplaceAllStringFunc(text, func(block string) string {
		m := fencedCodeBlock.FindStringSubmatch(block)
		return protect(codeBlockHTML(m[2]))
	})
	return convertIndentedCode(text)
}

// convertIndentedCode merges contiguous lines indented by four spaces or one
// tab into a single code block.
func convertIndentedCode(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	state := codeNone
	var block []string

	flush := func() {
		if state != codeIndented {
			return
		}
		out = append(out, protect(codeBlockHTML(strings.Join(block, "\n"))))
		block = nil
		state = codeNone
	}

	for _, line := range lines {
		if body, ok := stripCodeIndent(line); ok {
			state = codeIndented
			block = append(block, body)
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()

	return strings.Join(out, "\n")
}

// stripCodeIndent removes a leading four-space or tab indent.
func stripCodeIndent(line string) (string, bool) {
	if body, ok := strings.CutPrefix(line, "    "); ok {
		return body, true
	}
	if body, ok := strings.CutPrefix(line, "\t"); ok {
		return body, true
	}
	return line, false
}

func codeBlockHTML(code string) string {
	return "<pre><code>" + code + "</code></pre>"
}
