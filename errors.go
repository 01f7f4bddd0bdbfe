package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrInputNotFound = errors.New("input file not found")
	ErrDecode        = errors.New("cannot decode input file")
	ErrReadMarkdown  = errors.New("failed to read markdown file")

	// Conversion errors.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrTemplateRender = pipeline.ErrDocumentRender

	// Option validation errors.
	ErrInvalidEngine         = errors.New("invalid engine")
	ErrInvalidHighlightStyle = errors.New("invalid highlight style")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
