package assets

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader serves the styles and templates compiled into the binary.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: builtin}
}

// LoadStyle returns the built-in stylesheet called name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(styleKind, name)
}

// LoadTemplate returns the built-in page template called name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(templateKind, name)
}

func (e *EmbeddedLoader) load(k kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	return readAsset(e.fsys, k, name)
}

// StyleNames returns the names of the built-in styles, sorted.
func (e *EmbeddedLoader) StyleNames() []string {
	matches, err := fs.Glob(e.fsys, styleKind.file("*"))
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), styleKind.ext))
	}
	return names
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
