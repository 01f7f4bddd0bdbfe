package md2html

import (
	"path/filepath"
	"testing"
)

func TestTitleFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "dashes", path: "getting-started.md", want: "Getting Started"},
		{name: "underscores", path: "release_notes.md", want: "Release Notes"},
		{name: "mixed separators", path: "my-first_post.markdown", want: "My First Post"},
		{name: "directory stripped", path: filepath.Join("docs", "api-guide.md"), want: "Api Guide"},
		{name: "upper case lowered", path: "README.md", want: "Readme"},
		{name: "no extension", path: "notes", want: "Notes"},
		{name: "unicode", path: "été-à-paris.md", want: "Été À Paris"},
		{name: "empty", path: "", want: DefaultTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TitleFromFilename(tt.path); got != tt.want {
				t.Errorf("TitleFromFilename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "doc.md", want: "doc.html"},
		{path: "notes.markdown", want: "notes.html"},
		{path: filepath.Join("a", "b.txt"), want: filepath.Join("a", "b.html")},
		{path: "README", want: "README.html"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := DefaultOutputPath(tt.path); got != tt.want {
				t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
