package md2html

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/assets"
)

func TestNewAssetLoader(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded assets", func(t *testing.T) {
		t.Parallel()

		loader, err := NewAssetLoader("")
		if err != nil {
			t.Fatalf("NewAssetLoader() error = %v", err)
		}

		css, err := loader.LoadStyle(DefaultStyle)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if !strings.Contains(css, "body") {
			t.Errorf("LoadStyle() = %q, want default style", css)
		}

		tmpl, err := loader.LoadTemplate(DefaultTemplate)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(tmpl, "{{.Body}}") {
			t.Errorf("LoadTemplate() = %q, want document template", tmpl)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetLoader(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("NewAssetLoader() error = %v, want %v", err, ErrInvalidAssetPath)
		}
	})

	t.Run("custom style with embedded fallback", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "styles", "brand.css"), []byte("h1{}"), 0o600); err != nil {
			t.Fatal(err)
		}

		loader, err := NewAssetLoader(dir)
		if err != nil {
			t.Fatalf("NewAssetLoader() error = %v", err)
		}

		css, err := loader.LoadStyle("brand")
		if err != nil || css != "h1{}" {
			t.Errorf("LoadStyle(brand) = %q, %v; want custom style", css, err)
		}
		if _, err := loader.LoadStyle("minimal"); err != nil {
			t.Errorf("LoadStyle(minimal) fallback error = %v", err)
		}
		if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(missing) error = %v, want %v", err, ErrStyleNotFound)
		}
		if _, err := loader.LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate(missing) error = %v, want %v", err, ErrTemplateNotFound)
		}
	})
}

func TestConvertAssetError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "nil", err: nil, wantErr: nil},
		{name: "style not found", err: assets.ErrStyleNotFound, wantErr: ErrStyleNotFound},
		{name: "template not found", err: assets.ErrTemplateNotFound, wantErr: ErrTemplateNotFound},
		{name: "invalid base path", err: assets.ErrInvalidBasePath, wantErr: ErrInvalidAssetPath},
		{name: "path traversal", err: assets.ErrPathTraversal, wantErr: ErrInvalidAssetPath},
		{name: "invalid name", err: assets.ErrInvalidAssetName, wantErr: ErrStyleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertAssetError(tt.err)
			if tt.wantErr == nil {
				if got != nil {
					t.Errorf("convertAssetError(nil) = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.wantErr) {
				t.Errorf("convertAssetError() = %v, want %v", got, tt.wantErr)
			}
			if got.Error() != tt.err.Error() {
				t.Errorf("message = %q, want original %q", got.Error(), tt.err.Error())
			}
		})
	}

	t.Run("unknown error passes through", func(t *testing.T) {
		t.Parallel()

		other := errors.New("disk on fire")
		if got := convertAssetError(other); got != other {
			t.Errorf("convertAssetError() = %v, want original", got)
		}
	})
}

func TestStyles(t *testing.T) {
	t.Parallel()

	got := Styles()
	want := []string{"default", "minimal", "print"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Styles() = %v, want %v", got, want)
	}
}
