package md2html

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// titleSeparators are replaced by spaces when deriving a title.
var titleSeparators = strings.NewReplacer("-", " ", "_", " ")

// TitleFromFilename derives a page title from a file name: the extension is
// dropped, dashes and underscores become spaces and every word is capitalized.
// "getting-started.md" yields "Getting Started".
func TitleFromFilename(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return DefaultTitle
	}

	// cases.Caser keeps state and must not be shared between goroutines.
	return cases.Title(language.Und).String(titleSeparators.Replace(stem))
}

// DefaultOutputPath returns path with its extension replaced by ".html".
func DefaultOutputPath(path string) string {
	out, err := fileutil.ReplaceExtension(path, "html")
	if err != nil {
		return path + ".html"
	}
	return out
}
