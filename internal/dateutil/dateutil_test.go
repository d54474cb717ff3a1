package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   string
		expected string
		wantErr  bool
	}{
		{
			name:     "iso date",
			format:   "YYYY-MM-DD",
			expected: "2006-01-02",
		},
		{
			name:     "long month",
			format:   "MMMM D, YYYY",
			expected: "January 2, 2006",
		},
		{
			name:     "time tokens",
			format:   "HH:mm:ss",
			expected: "15:04:05",
		},
		{
			name:     "bracket literal",
			format:   "MMMM D, YYYY [at] HH:mm",
			expected: "January 2, 2006 at 15:04",
		},
		{
			name:     "two digit year and month abbrev",
			format:   "DD MMM YY",
			expected: "02 Jan 06",
		},
		{
			name:     "literal characters preserved",
			format:   "D/M/YYYY",
			expected: "2/1/2006",
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
		{
			name:    "unclosed bracket",
			format:  "YYYY [at",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want ErrInvalidFormat", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.format, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.format, got, tt.expected)
			}
		})
	}
}

func TestParseFormatTooLong(t *testing.T) {
	t.Parallel()

	long := make([]byte, MaxFormatLength+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := ParseFormat(string(long)); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseFormat(long) error = %v, want ErrInvalidFormat", err)
	}
}

func TestResolveLayout(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, time.March, 7, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		rendered string
	}{
		{name: "iso preset", input: "iso", rendered: "2024-03-07"},
		{name: "preset is case-insensitive", input: "ISO", rendered: "2024-03-07"},
		{name: "us preset", input: "us", rendered: "03/07/2024"},
		{name: "long preset", input: "long", rendered: "March 7, 2024"},
		{name: "timestamp preset", input: "timestamp", rendered: "March 7, 2024 at 14:30"},
		{name: "raw token format", input: "DD.MM.YYYY", rendered: "07.03.2024"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			layout, err := ResolveLayout(tt.input)
			if err != nil {
				t.Fatalf("ResolveLayout(%q) error = %v", tt.input, err)
			}
			if got := fixed.Format(layout); got != tt.rendered {
				t.Errorf("ResolveLayout(%q) renders %q, want %q", tt.input, got, tt.rendered)
			}
		})
	}
}
