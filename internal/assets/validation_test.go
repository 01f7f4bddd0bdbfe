package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "default", nil},
		{"name with hyphen", "dark-mode", nil},
		{"name with underscore", "my_style", nil},
		{"name with numbers", "print2", nil},
		{"mixed case", "MyStyle", nil},
		{"empty name", "", ErrInvalidAssetName},
		{"forward slash", "styles/default", ErrInvalidAssetName},
		{"backslash", "styles\\default", ErrInvalidAssetName},
		{"parent traversal", "../secret", ErrInvalidAssetName},
		{"absolute path", "/etc/passwd", ErrInvalidAssetName},
		{"extension", "default.css", ErrInvalidAssetName},
		{"hidden file", ".hidden", ErrInvalidAssetName},
		{"space", "my style", ErrInvalidAssetName},
		{"non-ascii letter", "styl\u00e9", ErrInvalidAssetName},
		{"glob", "*", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
