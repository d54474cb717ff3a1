package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	reviewdoc "github.com/lexgen/go-reviewdoc"
)

func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRunConvertCreatesOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "matter.md", "# Findings\n\nSome text with [a link](http://x.test).")

	flags := &renderFlags{}
	flags.common.quiet = true
	flags.output.format = "html"

	if err := runConvert(context.Background(), []string{input}, flags); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}

	out := filepath.Join(dir, "matter.html")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, "Legal Plaintiff Review Results") {
		t.Error("output missing report title")
	}
	if !strings.Contains(page, "Document: matter") {
		t.Error("output missing document name derived from filename")
	}
}

func TestRunConvertDefendantVariant(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "matter.md", "body")

	flags := &renderFlags{}
	flags.common.quiet = true
	flags.output.format = "html"
	flags.document.defendant = true
	flags.document.name = "case-77"

	if err := runConvert(context.Background(), []string{input}, flags); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "matter.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, "Legal Defendant Review Results") {
		t.Error("output missing defendant title")
	}
	if !strings.Contains(page, "Document: case-77") {
		t.Error("output missing flag-provided document name")
	}
}

func TestRunConvertDOCXOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "matter.md", "body")

	flags := &renderFlags{}
	flags.common.quiet = true

	if err := runConvert(context.Background(), []string{input}, flags); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "matter.docx"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("default format output is not an OOXML container")
	}
}

func TestRunConvertPreview(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "matter.md", "# Hello")

	flags := &renderFlags{}
	flags.common.quiet = true
	flags.preview = true

	if err := runConvert(context.Background(), []string{input}, flags); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "matter.html"))
	if err != nil {
		t.Fatalf("reading preview output: %v", err)
	}
	if !strings.Contains(string(data), "<h1") {
		t.Error("preview output missing rendered heading")
	}
}

func TestRunConvertErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		setup   func(f *renderFlags)
		wantErr error
	}{
		{
			name:    "no input",
			args:    nil,
			wantErr: ErrNoInput,
		},
		{
			name:    "wrong extension",
			args:    []string{filepath.Join(dir, "notes.txt")},
			wantErr: ErrInvalidExtension,
		},
		{
			name:    "missing file",
			args:    []string{filepath.Join(dir, "absent.md")},
			wantErr: ErrReadMarkdown,
		},
		{
			name: "unknown format",
			args: []string{writeMarkdown(t, dir, "fmt.md", "x")},
			setup: func(f *renderFlags) {
				f.output.format = "rtf"
			},
			wantErr: reviewdoc.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := &renderFlags{}
			flags.common.quiet = true
			if tt.setup != nil {
				tt.setup(flags)
			}

			err := runConvert(context.Background(), tt.args, flags)
			if err == nil {
				t.Fatal("runConvert() succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("runConvert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveDocumentName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagName  string
		cfgName   string
		inputPath string
		want      string
	}{
		{name: "flag wins", flagName: "flag", cfgName: "cfg", inputPath: "a/b.md", want: "flag"},
		{name: "config next", cfgName: "cfg", inputPath: "a/b.md", want: "cfg"},
		{name: "filename fallback", inputPath: "a/matter-4821.md", want: "matter-4821"},
		{name: "stdin fallback", inputPath: "review", want: "review"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveDocumentName(tt.flagName, tt.cfgName, tt.inputPath)
			if got != tt.want {
				t.Errorf("resolveDocumentName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		explicit   string
		defaultDir string
		inputPath  string
		ext        string
		want       string
	}{
		{
			name:     "explicit wins",
			explicit: "custom.pdf",
			want:     "custom.pdf",
		},
		{
			name:      "derived next to input",
			inputPath: filepath.Join("docs", "matter.md"),
			ext:       "docx",
			want:      filepath.Join("docs", "matter.docx"),
		},
		{
			name:       "default dir",
			defaultDir: "out",
			inputPath:  filepath.Join("docs", "matter.md"),
			ext:        "pdf",
			want:       filepath.Join("out", "matter.pdf"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.explicit, tt.defaultDir, tt.inputPath, tt.ext)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
