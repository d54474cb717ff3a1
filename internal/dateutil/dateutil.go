// Package dateutil resolves user-friendly timestamp formats to Go
// time layouts for the document footer.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat indicates an invalid format string.
var ErrInvalidFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length to prevent abuse.
const MaxFormatLength = 50

// tokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var tokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// Presets provides named shortcuts for common footer formats.
var Presets = map[string]string{
	"iso":       "YYYY-MM-DD",
	"european":  "DD/MM/YYYY",
	"us":        "MM/DD/YYYY",
	"long":      "MMMM D, YYYY",
	"timestamp": "MMMM D, YYYY [at] HH:mm",
}

// ParseFormat converts a user-friendly format string to a Go time
// layout. Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss.
// Use brackets to escape literal text: [at] preserves "at" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidFormat if the format is empty, too long, or has an
// unclosed bracket.
func ParseFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidFormat, MaxFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolveLayout maps a preset name or token format to a Go time
// layout. Preset lookup is case-insensitive; anything else is parsed
// as a token format.
func ResolveLayout(nameOrFormat string) (string, error) {
	if preset, ok := Presets[strings.ToLower(nameOrFormat)]; ok {
		nameOrFormat = preset
	}
	return ParseFormat(nameOrFormat)
}
