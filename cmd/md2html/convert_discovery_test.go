package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"a.md":              "# A",
		"notes.txt":         "plain",
		"sub/b.markdown":    "# B",
		"sub/deep/c.md":     "# C",
		"sub/ignore.html":   "<p>x</p>",
		"empty/readme.txt":  "none",
		"single/only.md":    "# Only",
		"single/other.json": "{}",
	})

	t.Run("directory mirrors tree under output dir", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(dir, "site")
		files, err := discoverFiles([]string{filepath.Join(dir, "sub")}, "", out)
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}

		want := []FileToConvert{
			{InputPath: filepath.Join(dir, "sub", "b.markdown"), OutputPath: filepath.Join(out, "b.html")},
			{InputPath: filepath.Join(dir, "sub", "deep", "c.md"), OutputPath: filepath.Join(out, "deep", "c.html")},
		}
		if len(files) != len(want) {
			t.Fatalf("discoverFiles() = %+v, want %+v", files, want)
		}
		for i := range want {
			if files[i] != want[i] {
				t.Errorf("files[%d] = %+v, want %+v", i, files[i], want[i])
			}
		}
	})

	t.Run("directory without output dir writes next to sources", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles([]string{filepath.Join(dir, "single")}, "", "")
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if len(files) != 1 || files[0].OutputPath != filepath.Join(dir, "single", "only.html") {
			t.Errorf("discoverFiles() = %+v", files)
		}
		if files[0].Explicit {
			t.Error("walked file marked explicit")
		}
	})

	t.Run("directory without markdown files", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles([]string{filepath.Join(dir, "empty")}, "", "")
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("discoverFiles() error = %v, want %v", err, ErrNoInput)
		}
	})

	t.Run("explicit files kept in order, missing included", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			filepath.Join(dir, "notes.txt"),
			filepath.Join(dir, "missing.md"),
			filepath.Join(dir, "a.md"),
		}
		files, err := discoverFiles(inputs, "", "")
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if len(files) != 3 {
			t.Fatalf("len = %d, want 3", len(files))
		}
		for i, f := range files {
			if f.InputPath != inputs[i] || !f.Explicit {
				t.Errorf("files[%d] = %+v, want explicit %s", i, f, inputs[i])
			}
		}
		if files[0].OutputPath != filepath.Join(dir, "notes.html") {
			t.Errorf("OutputPath = %q, want notes.html", files[0].OutputPath)
		}
	})

	t.Run("explicit output path used literally", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(dir, "custom", "page.htm")
		files, err := discoverFiles([]string{filepath.Join(dir, "a.md")}, out, out)
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if files[0].OutputPath != out {
			t.Errorf("OutputPath = %q, want %q", files[0].OutputPath, out)
		}
	})

	t.Run("explicit output directory", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(dir, "sub")
		files, err := discoverFiles([]string{filepath.Join(dir, "a.md")}, out, out)
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if files[0].OutputPath != filepath.Join(out, "a.html") {
			t.Errorf("OutputPath = %q, want file inside directory", files[0].OutputPath)
		}
	})
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		baseDir   string
		want      string
	}{
		{
			name:  "next to input",
			input: filepath.Join("docs", "guide.md"),
			want:  filepath.Join("docs", "guide.html"),
		},
		{
			name:      "flat output dir",
			input:     filepath.Join("docs", "guide.md"),
			outputDir: "out",
			want:      filepath.Join("out", "guide.html"),
		},
		{
			name:      "mirrored relative dir",
			input:     filepath.Join("docs", "api", "v1.markdown"),
			outputDir: "out",
			baseDir:   "docs",
			want:      filepath.Join("out", "api", "v1.html"),
		},
		{
			name:      "input outside base dir",
			input:     filepath.Join("other", "x.md"),
			outputDir: "out",
			baseDir:   "docs",
			want:      filepath.Join("out", "x.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.input, tt.outputDir, tt.baseDir)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWarnNonMarkdown(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"notes.txt":  "x",
		"doc.md":     "x",
		"walked.rst": "x",
	})
	env, _, stderr := newTestEnv()

	warnNonMarkdown([]FileToConvert{
		{InputPath: filepath.Join(dir, "notes.txt"), Explicit: true},
		{InputPath: filepath.Join(dir, "doc.md"), Explicit: true},
		{InputPath: filepath.Join(dir, "walked.rst")},
		{InputPath: filepath.Join(dir, "missing.txt"), Explicit: true},
	}, env)

	got := stderr.String()
	if !strings.Contains(got, "warning: "+filepath.Join(dir, "notes.txt")) {
		t.Errorf("missing warning for notes.txt: %q", got)
	}
	if !strings.Contains(got, "hint: unexpected extension .txt") {
		t.Errorf("missing extension hint: %q", got)
	}
	if strings.Count(got, "warning:") != 1 {
		t.Errorf("want exactly one warning, got %q", got)
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{n: 0},
		{n: 1},
		{n: 64},
		{n: -1, wantErr: true},
		{n: 65, wantErr: true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidWorkerCount) {
				t.Errorf("validateWorkers(%d) error = %v, want %v", tt.n, err, ErrInvalidWorkerCount)
			}
			if err != nil && !strings.Contains(err.Error(), "hint:") {
				t.Errorf("validateWorkers(%d) error lacks hint: %v", tt.n, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("validateWorkers(%d) unexpected error: %v", tt.n, err)
		}
	}
}
