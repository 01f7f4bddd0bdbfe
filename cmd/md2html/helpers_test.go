package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// mockConverter is a test double for the CLIConverter interface.
type mockConverter struct {
	mu          sync.Mutex
	calls       []md2html.Input
	convertFunc func(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error)
}

func (m *mockConverter) Convert(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.convertFunc != nil {
		return m.convertFunc(ctx, input)
	}
	return &md2html.ConvertResult{HTML: []byte("<html>" + input.Title + "</html>")}, nil
}

func (m *mockConverter) getCalls() []md2html.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]md2html.Input{}, m.calls...)
}

// newTestEnv returns an environment writing to buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	loader, _ := md2html.NewAssetLoader("")
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:         func() time.Time { return time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC) },
		Stdout:      &stdout,
		Stderr:      &stderr,
		AssetLoader: loader,
		Config:      config.DefaultConfig(),
	}
	return env, &stdout, &stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// readFile returns the content of path, failing the test if it is missing.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
