package md2html

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.RewriteConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.DocumentRenderer     = (*pipeline.TemplateDocument)(nil)
	_ assets.AssetLoader            = (AssetLoader)(nil)
)

// ConvertDocument converts Markdown to an HTML body with the rewrite
// pipeline. It is a pure function of its input.
func ConvertDocument(markdown string) string {
	return pipeline.ConvertDocument(markdown)
}

// Converter turns Markdown into complete HTML documents.
// Create with NewConverter. A Converter is immutable and safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	renderer          pipeline.DocumentRenderer
	css               string // resolved stylesheet
}

// NewConverter creates a Converter with default configuration.
// Returns error if an option is invalid or assets cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine: EnginePipeline,
			lang:   DefaultLang,
		},
		assetLoader:  &publicLoader{assets.NewEmbeddedLoader()},
		preprocessor: &pipeline.SourcePreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.publicAssetLoader != nil:
		c.assetLoader = c.publicAssetLoader
	case c.cfg.assetPath != "":
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.assetLoader = loader
	}

	if err := c.resolveEngine(); err != nil {
		return nil, err
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert converts input to a complete HTML document.
// Cancellation is honored between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	md := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := c.htmlConverter.ToHTML(ctx, md)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, err
		}
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	data := &pipeline.DocumentData{
		Title: input.Title,
		Lang:  input.Lang,
		CSS:   joinCSS(c.css, input.CSS),
		Body:  body,
	}
	if data.Title == "" {
		data.Title = DefaultTitle
	}
	if data.Lang == "" {
		data.Lang = c.cfg.lang
	}

	page, err := c.renderer.RenderDocument(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	return &ConvertResult{HTML: []byte(page), Body: body}, nil
}

// Engine returns the engine the converter was built with.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// resolveEngine validates the engine and highlight options and creates the
// HTML converter.
func (c *Converter) resolveEngine() error {
	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return err
	}
	c.cfg.engine = engine

	if c.cfg.highlight {
		if c.cfg.highlightStyle == "" {
			c.cfg.highlightStyle = pipeline.DefaultHighlightStyle
		}
		if err := pipeline.ValidateHighlightStyle(c.cfg.highlightStyle); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidHighlightStyle, err)
		}
	}

	switch engine {
	case EngineCommonMark:
		style := ""
		if c.cfg.highlight {
			style = c.cfg.highlightStyle
		}
		c.htmlConverter = pipeline.NewGoldmarkConverter(style)
	default:
		c.htmlConverter = pipeline.NewRewriteConverter()
	}
	return nil
}

// resolveStyle resolves the style input (name or path) to CSS content and
// appends the highlight stylesheet when highlighting is active.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	switch {
	case input == NoStyle:
		c.css = ""
	case fileutil.IsFilePath(input) || fileutil.IsCSS(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrStyleNotFound, input)
			}
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.css = string(content)
	default:
		css, err := c.assetLoader.LoadStyle(input)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", input, err)
		}
		c.css = css
	}

	if c.cfg.highlight && c.cfg.engine == EngineCommonMark {
		highlightCSS, err := pipeline.HighlightCSS(c.cfg.highlightStyle)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidHighlightStyle, err)
		}
		c.css = joinCSS(c.css, highlightCSS)
	}
	return nil
}

// resolveTemplate loads and parses the page template.
func (c *Converter) resolveTemplate() error {
	content, err := c.assetLoader.LoadTemplate(DefaultTemplate)
	if err != nil {
		return fmt.Errorf("loading template %q: %w", DefaultTemplate, err)
	}

	renderer, err := pipeline.NewTemplateDocument(content)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	c.renderer = renderer
	return nil
}

// joinCSS concatenates stylesheets, skipping empty ones.
func joinCSS(base, extra string) string {
	switch {
	case base == "":
		return extra
	case extra == "":
		return base
	default:
		return base + "\n" + extra
	}
}

// publicLoader maps internal loader errors to public sentinels.
type publicLoader struct {
	loader assets.AssetLoader
}

func (p *publicLoader) LoadStyle(name string) (string, error) {
	content, err := p.loader.LoadStyle(name)
	return content, convertAssetError(err)
}

func (p *publicLoader) LoadTemplate(name string) (string, error) {
	content, err := p.loader.LoadTemplate(name)
	return content, convertAssetError(err)
}
