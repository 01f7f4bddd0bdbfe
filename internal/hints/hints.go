// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strconv"
	"strings"
)

// maxListed caps how many names a hint enumerates.
const maxListed = 8

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a .css file path")
}

// ForHighlightStyle returns hints for unknown chroma style names.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	listed := available
	suffix := ""
	if len(listed) > maxListed {
		listed = listed[:maxListed]
		suffix = ", ..."
	}
	return format("styles include " + strings.Join(listed, ", ") + suffix)
}

// ForEngine returns hints for unknown engine names.
func ForEngine(engines []string) string {
	return format("use --engine " + strings.Join(engines, " or --engine "))
}

// ForExtension returns the hint printed when an input is not a .md file.
func ForExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return format("file has no extension; expected .md or .markdown")
	}
	return format("unexpected extension " + ext + "; expected .md or .markdown")
}

// ForWorkers returns hints for an out-of-range worker count.
func ForWorkers(maxWorkers int) string {
	return format("use --workers 0 for automatic sizing, or a value up to " + strconv.Itoa(maxWorkers))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
