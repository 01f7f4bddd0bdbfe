package md2html

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Engine selects how Markdown is turned into an HTML body.
type Engine string

// Supported engines.
const (
	// EnginePipeline runs the ordered rewrite passes (see ConvertDocument).
	EnginePipeline Engine = "pipeline"

	// EngineCommonMark uses Goldmark with GFM extensions.
	EngineCommonMark Engine = "commonmark"
)

// Engines returns the supported engine names.
func Engines() []string {
	return []string{string(EnginePipeline), string(EngineCommonMark)}
}

// ParseEngine converts a name to an Engine, ignoring case.
// An empty name selects EnginePipeline.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EnginePipeline:
		return EnginePipeline, nil
	case EngineCommonMark:
		return EngineCommonMark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %s)", ErrInvalidEngine, name, strings.Join(Engines(), " or "))
	}
}

// Document defaults.
const (
	// DefaultTitle is used when Input.Title is empty.
	DefaultTitle = "Document"

	// DefaultLang is the <html lang> value when none is configured.
	DefaultLang = "en"
)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content; empty yields an empty body
	Title    string // page <title> (empty = DefaultTitle)
	CSS      string // extra CSS appended after the converter style
	Lang     string // overrides the converter language for this document
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML []byte // complete HTML document
	Body string // HTML body fragment, before templating
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds construction-time settings.
type converterConfig struct {
	engine         Engine
	styleInput     string // name, path, NoStyle, or "" for DefaultStyle
	assetPath      string
	lang           string
	highlight      bool
	highlightStyle string
}

// WithEngine selects the Markdown engine.
// An unknown engine makes NewConverter return ErrInvalidEngine.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithStyle sets the stylesheet by built-in or custom name, or by .css file
// path. NoStyle disables the stylesheet.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithAssetPath loads styles and templates from path, falling back to the
// embedded assets. Ignored when WithAssetLoader is also given.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithLang sets the default <html lang> attribute.
func WithLang(lang string) Option {
	return func(c *Converter) {
		c.cfg.lang = lang
	}
}

// WithHighlighting enables chroma syntax highlighting of fenced code with a
// language tag, using the named style ("" = "github"). The chroma stylesheet
// is appended to the page style. Only EngineCommonMark highlights code; the
// pipeline engine discards the language tag.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// HighlightStyles returns the chroma style names accepted by WithHighlighting,
// sorted.
func HighlightStyles() []string {
	return pipeline.HighlightStyles()
}
