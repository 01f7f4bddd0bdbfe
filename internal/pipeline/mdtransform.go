package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is the UTF-8 encoded U+FEFF some editors prepend to files.
const byteOrderMark = "\uFEFF"

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor prepares raw file content for either engine.
type SourcePreprocessor struct{}

// PreprocessMarkdown strips a leading byte order mark and normalizes line
// endings to \n, so that line-based passes see the same text on every OS.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
