package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// ErrUnknownHighlightStyle indicates the chroma style name is not registered.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// HighlightStyles returns the registered chroma style names, sorted.
func HighlightStyles() []string {
	names := styles.Names()
	slices.Sort(names)
	return names
}

// ValidateHighlightStyle checks that name is a registered chroma style.
func ValidateHighlightStyle(name string) error {
	if !slices.Contains(styles.Names(), name) {
		return fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
	}
	return nil
}

// HighlightCSS returns the stylesheet for the chroma classes emitted by
// a GoldmarkConverter created with the same style.
func HighlightCSS(name string) (string, error) {
	if err := ValidateHighlightStyle(name); err != nil {
		return "", err
	}

	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&sb, styles.Get(name)); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return sb.String(), nil
}
