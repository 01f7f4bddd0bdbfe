package md2html

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ReadMarkdownFile reads a Markdown file. Content that is not valid UTF-8 is
// decoded as Latin-1.
//
// Returns ErrInputNotFound if the file does not exist, ErrDecode if the
// content cannot be decoded and ErrReadMarkdown for any other read failure.
func ReadMarkdownFile(path string) (string, error) {
	content, err := fileutil.ReadText(path)
	switch {
	case err == nil:
		return content, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	case errors.Is(err, fileutil.ErrDecode):
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	default:
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
}
