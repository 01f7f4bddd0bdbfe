package pipeline

import (
	"context"
	"errors"
	"slices"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML body conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Pass is one named stage of the rewrite pipeline.
type Pass struct {
	Name  string
	Apply func(text string) string
}

// passes is the execution order. Later passes rely on earlier ones having
// already converted or protected the constructs they own.
var passes = []Pass{
	{Name: "code-blocks", Apply: ConvertCodeBlocks},
	{Name: "headers", Apply: ConvertHeaders},
	{Name: "horizontal-rules", Apply: ConvertHorizontalRules},
	{Name: "blockquotes", Apply: ConvertBlockquotes},
	{Name: "lists", Apply: ConvertLists},
	{Name: "emphasis", Apply: ConvertEmphasis},
	{Name: "links", Apply: ConvertLinks},
	{Name: "inline-code", Apply: ConvertInlineCode},
	{Name: "paragraphs", Apply: ComposeParagraphs},
}

// Passes returns the pipeline stages in execution order.
func Passes() []Pass {
	return slices.Clone(passes)
}

// ConvertDocument runs every pass over text, in order, and returns the HTML body.
func ConvertDocument(text string) string {
	text = escapeReserved(text)
	for _, p := range passes {
		text = p.Apply(text)
	}
	return unescapeReserved(restoreProtected(text))
}

// RewriteConverter converts Markdown with the rewrite pipeline.
// It holds no state and is safe for concurrent use.
type RewriteConverter struct{}

// NewRewriteConverter creates a RewriteConverter.
func NewRewriteConverter() *RewriteConverter {
	return &RewriteConverter{}
}

// ToHTML converts Markdown content to an HTML body fragment.
// Cancellation is checked between passes.
func (c *RewriteConverter) ToHTML(ctx context.Context, content string) (string, error) {
	content = escapeReserved(content)
	for _, p := range passes {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		content = p.Apply(content)
	}
	return unescapeReserved(restoreProtected(content)), nil
}
