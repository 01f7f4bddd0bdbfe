package pipeline

import (
	"strings"
	"testing"
)

func TestProtectRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
	}{
		{"simple", "<pre><code>x</code></pre>"},
		{"multiline", "<pre><code>a\n\nb</code></pre>"},
		{"markdown markers", "<pre><code># h\n- l\n**b** _i_ [a](b)</code></pre>"},
		{"empty", ""},
		{"non-ascii", "<pre><code>héllo 世界</code></pre>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token := protect(tt.html)
			if strings.Contains(token, "\n") {
				t.Errorf("protect(%q) contains a newline", tt.html)
			}
			if !isProtected(token) {
				t.Errorf("isProtected(protect(%q)) = false", tt.html)
			}
			if got := restoreProtected(token); got != tt.html {
				t.Errorf("restoreProtected(protect(%q)) = %q", tt.html, got)
			}
		})
	}
}

func TestRestoreProtected_SurroundingText(t *testing.T) {
	t.Parallel()

	text := "<p>before</p>\n\n" + protect("<pre><code>x</code></pre>") + "\n\n<p>after</p>"
	want := "<p>before</p>\n\n<pre><code>x</code></pre>\n\n<p>after</p>"

	if got := restoreProtected(text); got != want {
		t.Errorf("restoreProtected() = %q, want %q", got, want)
	}
}

func TestRestoreProtected_NoTokens(t *testing.T) {
	t.Parallel()

	in := "<p>plain</p>"
	if got := restoreProtected(in); got != in {
		t.Errorf("restoreProtected(%q) = %q", in, got)
	}
}

func TestIsProtected(t *testing.T) {
	t.Parallel()

	if isProtected("<pre>") {
		t.Error("isProtected(\"<pre>\") = true, want false")
	}
	if isProtected("text " + protect("x")) {
		t.Error("isProtected() = true for token not at start")
	}
}

func TestEscapeReserved(t *testing.T) {
	t.Parallel()

	input := "a\uE000b\uE001c\uE002d\uE003e"
	escaped := escapeReserved(input)
	if strings.ContainsAny(escaped, ProtectStartPlaceholder+ProtectEndPlaceholder) {
		t.Errorf("escapeReserved(%q) = %q, still holds code delimiters", input, escaped)
	}
	if isProtected(escapeReserved("\uE000x")) {
		t.Error("escaped delimiter reported as a code token")
	}
	if got := unescapeReserved(restoreProtected(escaped)); got != input {
		t.Errorf("round trip = %q, want %q", got, input)
	}
	if got := escapeReserved("plain"); got != "plain" {
		t.Errorf("escapeReserved(plain) = %q", got)
	}
}
