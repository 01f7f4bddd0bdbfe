package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Built-in asset names.
const (
	// DefaultStyleName is the stylesheet used when none is configured.
	DefaultStyleName = "default"

	// DefaultTemplateName is the page template wrapping every document.
	DefaultTemplateName = "document"
)

// AssetLoader defines the contract for loading CSS styles and HTML templates.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// kind locates one family of assets inside an asset tree.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = kind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// file returns the slash-separated path of name within the tree.
func (k kind) file(name string) string {
	return path.Join(k.dir, name+k.ext)
}

// readAsset reads a validated asset name from fsys.
func readAsset(fsys fs.FS, k kind, name string) (string, error) {
	data, err := fs.ReadFile(fsys, k.file(name))
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", k.notFound, name)
	default:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
}
