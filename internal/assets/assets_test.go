package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("default style loads", func(t *testing.T) {
		t.Parallel()

		css, err := loader.LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle(%q) error = %v", DefaultStyleName, err)
		}
		if !strings.Contains(css, ".title") {
			t.Errorf("LoadStyle(%q) missing .title rule", DefaultStyleName)
		}
	})

	t.Run("plain style loads", func(t *testing.T) {
		t.Parallel()

		css, err := loader.LoadStyle("plain")
		if err != nil {
			t.Fatalf("LoadStyle(\"plain\") error = %v", err)
		}
		if css == "" {
			t.Error("LoadStyle(\"plain\") returned empty CSS")
		}
	})

	t.Run("unknown style returns ErrStyleNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadStyle("nope")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(\"nope\") error = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestStyles(t *testing.T) {
	t.Parallel()

	names := NewEmbeddedLoader().Styles()
	if len(names) < 2 {
		t.Fatalf("Styles() = %v, want at least report and plain", names)
	}
	found := false
	for _, n := range names {
		if n == DefaultStyleName {
			found = true
		}
	}
	if !found {
		t.Errorf("Styles() = %v, missing default %q", names, DefaultStyleName)
	}
}
