// Package md2html converts Markdown documents to standalone HTML pages.
//
// # Quick Start
//
// For a body fragment, call ConvertDocument:
//
//	body := md2html.ConvertDocument("# Hello\n\nWorld")
//	// <h1>Hello</h1>\n\n<p>World</p>
//
// For a complete page with title and stylesheet, use a Converter:
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Title:    md2html.TitleFromFilename("hello-world.md"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello-world.html", result.HTML, 0644)
//
// # Conversion Stages
//
//  1. Source preprocessing (byte order mark removal, line ending normalization)
//  2. Markdown to HTML body, using one of two engines:
//     - EnginePipeline (default): nine ordered rewrite passes over the text
//     - EngineCommonMark: Goldmark with GFM extensions and optional
//     chroma syntax highlighting
//  3. Page rendering: the body, title, language and stylesheet are placed in
//     the "document" HTML template
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithEngine(md2html.EngineCommonMark),
//	    md2html.WithHighlighting("monokai"),
//	    md2html.WithStyle("minimal"),
//	    md2html.WithLang("fr"),
//	)
//
// A Converter holds no per-conversion state and is safe for concurrent use.
//
// # Custom Assets
//
// Override built-in styles and the page template using AssetLoader:
//
//	loader, err := md2html.NewAssetLoader("/path/to/assets")
//	conv, err := md2html.NewConverter(md2html.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── document.html
//
// Assets missing from the directory fall back to the embedded defaults.
package md2html
