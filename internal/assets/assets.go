// Package assets provides CSS styles for the HTML assembler, compiled
// into the binary via go:embed and loadable by name.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed styles/*.css
var styleFS embed.FS

// DefaultStyleName is the style used when none is selected.
const DefaultStyleName = "report"

// ErrStyleNotFound indicates the named style is not embedded.
var ErrStyleNotFound = errors.New("style not found")

// StyleLoader resolves a style name to CSS content.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// EmbeddedLoader serves the styles compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the CSS content for the named style.
func (l *EmbeddedLoader) LoadStyle(name string) (string, error) {
	data, err := styleFS.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrStyleNotFound, name, strings.Join(l.Styles(), ", "))
	}
	return string(data), nil
}

// Styles lists the embedded style names, sorted.
func (l *EmbeddedLoader) Styles() []string {
	entries, err := styleFS.ReadDir("styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	sort.Strings(names)
	return names
}
