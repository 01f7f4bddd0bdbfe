package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName accepts bare names made of letters, digits, '-' and '_'.
// Separators, dots and anything else that could leave the asset directory
// or change the extension yield ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if i := strings.IndexFunc(name, notNameRune); i >= 0 {
		return fmt.Errorf("%w: %q (unexpected %q)", ErrInvalidAssetName, name, name[i])
	}
	return nil
}

func notNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r == '-' || r == '_':
		return false
	}
	return true
}
