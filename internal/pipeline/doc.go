// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The default engine is a fixed, ordered sequence of rewrite passes. Each pass
// is a pure function from the whole document text to the whole document text:
//
//  1. code blocks (fenced, then indented)
//  2. ATX headers
//  3. horizontal rules
//  4. blockquotes
//  5. lists
//  6. emphasis (bold before italic, then strikethrough)
//  7. links and autolinks
//  8. inline code
//  9. paragraphs and line breaks
//
// No parse tree is built. Block passes classify single lines and merge
// contiguous runs of matching lines into one HTML element; inline passes are
// regular expression substitutions over the text that remains.
//
// Code emitted by the first pass is carried through the later passes inside
// an opaque token, so headers, emphasis or list markers inside code are never
// rewritten. ConvertDocument expands the tokens as its last step.
//
// The package also provides the CommonMark engine (Goldmark), the document
// template renderer, and the source preprocessor shared by both engines.
package pipeline
