package pipeline

import (
	"encoding/hex"
	"regexp"
	"strings"
)

// Protected-region delimiters use Unicode Private Use Area characters.
// Everything between them is hex, which no pass pattern can match.
const (
	ProtectStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	ProtectEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

// Literal delimiters carry private-use characters that were already in the
// source, so that only tokens made by protect are ever expanded as code.
const (
	literalStart = "\uE002"
	literalEnd   = "\uE003"
)

var (
	protectedToken = regexp.MustCompile(ProtectStartPlaceholder + `([0-9a-f]*)` + ProtectEndPlaceholder)
	literalToken   = regexp.MustCompile(literalStart + `([0-9a-f]+)` + literalEnd)
	reservedRune   = regexp.MustCompile(`[\x{E000}-\x{E003}]`)
)

// protect wraps finished HTML in a single-line token that later passes
// leave untouched.
func protect(html string) string {
	return ProtectStartPlaceholder + hex.EncodeToString([]byte(html)) + ProtectEndPlaceholder
}

// isProtected reports whether s begins with a protected token.
func isProtected(s string) bool {
	return strings.HasPrefix(s, ProtectStartPlaceholder)
}

// restoreProtected expands every protected token back into its HTML.
// Tokens nested inside a restored region are expanded as well.
func restoreProtected(text string) string {
	if !strings.Contains(text, ProtectStartPlaceholder) {
		return text
	}
	return protectedToken.ReplaceAllStringFunc(text, func(token string) string {
		payload := strings.TrimSuffix(strings.TrimPrefix(token, ProtectStartPlaceholder), ProtectEndPlaceholder)
		raw, err := hex.DecodeString(payload)
		if err != nil {
			return token
		}
		return restoreProtected(string(raw))
	})
}

// escapeReserved replaces every delimiter character present in the source
// with a literal token. Run once, before the first pass.
func escapeReserved(text string) string {
	if !reservedRune.MatchString(text) {
		return text
	}
	return reservedRune.ReplaceAllStringFunc(text, func(r string) string {
		return literalStart + hex.EncodeToString([]byte(r)) + literalEnd
	})
}

// unescapeReserved turns literal tokens back into the source characters.
// Run after restoreProtected so literals inside code are reached too.
func unescapeReserved(text string) string {
	if !strings.Contains(text, literalStart) {
		return text
	}
	return literalToken.ReplaceAllStringFunc(text, func(token string) string {
		raw, err := hex.DecodeString(token[len(literalStart) : len(token)-len(literalEnd)])
		if err != nil {
			return token
		}
		return string(raw)
	})
}
