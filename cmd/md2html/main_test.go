package main

// Notes:
// - isCommand: we test command name matching.
// - hasVerboseFlag: we test the pre-parse scan used for startup diagnostics.
// - runMain: we test dispatch and exit codes. Conversion itself is covered
//   in convert_test.go.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestIsCommand - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"convert", true},
		{"config", true},
		{"completion", true},
		{"version", true},
		{"help", true},
		{"foo", false},
		{"", false},
		{"doc.md", false},
		{"Convert", false}, // case sensitive
		{"VERSION", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"doc.md", "-v"}, true},
		{[]string{"--verbose", "doc.md"}, true},
		{[]string{"convert", "doc.md"}, false},
		{[]string{"--", "-v"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Main entry point exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage and exits with ExitUsage",
			args:         []string{"md2html"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: md2html"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"md2html", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"md2html dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"md2html", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2html", "Commands:"},
		},
		{
			name:         "help flag exits 0",
			args:         []string{"md2html", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2html"},
		},
		{
			name:         "help convert shows convert help",
			args:         []string{"md2html", "help", "convert"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2html [convert]"},
		},
		{
			name:         "help unknown command exits with ExitUsage",
			args:         []string{"md2html", "help", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:         "convert help flag exits 0",
			args:         []string{"md2html", "convert", "-h"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: md2html [convert]"},
		},
		{
			name:         "unknown word is treated as an input file",
			args:         []string{"md2html", "nonexistent.md"},
			wantCode:     ExitIO,
			wantInStderr: []string{"Error: input file not found: nonexistent.md"},
		},
		{
			name:         "completion bash",
			args:         []string{"md2html", "completion", "bash"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"_md2html"},
		},
		{
			name:         "unsupported shell returns ExitUsage",
			args:         []string{"md2html", "completion", "badshell"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unsupported shell"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}
