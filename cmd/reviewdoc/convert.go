package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	reviewdoc "github.com/lexgen/go-reviewdoc"
	"github.com/lexgen/go-reviewdoc/internal/config"
	"github.com/lexgen/go-reviewdoc/internal/dateutil"
	"github.com/lexgen/go-reviewdoc/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// stdinMarker reads content from standard input instead of a file.
const stdinMarker = "-"

// runConvert reads the input, renders it, and writes the result.
func runConvert(ctx context.Context, positionalArgs []string, flags *renderFlags) error {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	inputPath, content, err := readInput(positionalArgs)
	if err != nil {
		return err
	}

	input := reviewdoc.Input{
		Content:      content,
		DocumentName: resolveDocumentName(flags.document.name, cfg.Document.Name, inputPath),
		ForDefendant: flags.document.defendant || cfg.Document.Defendant,
		Format:       resolveFormat(flags.output.format, cfg.Output.Format),
	}

	renderer, err := newRenderer(flags, cfg)
	if err != nil {
		return err
	}

	start := time.Now()

	if flags.preview {
		return writePreview(ctx, renderer, flags, cfg, inputPath, content)
	}

	result, err := renderer.Render(ctx, input)
	if err != nil {
		return err
	}

	if flags.output.base64 {
		fmt.Println(result.Data)
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(result.Data)
	if err != nil {
		return fmt.Errorf("decoding transport payload: %w", err)
	}

	outputPath := resolveOutputPath(flags.output.path, cfg.Output.DefaultDir, inputPath, string(input.Format))
	if err := os.WriteFile(outputPath, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Printf("Created %s", outputPath)
		if flags.common.verbose {
			fmt.Printf(" (%s, %d bytes, %s)", result.MIMEType, len(data), time.Since(start).Round(time.Millisecond))
		}
		fmt.Println()
	}
	return nil
}

// newRenderer builds the renderer from flags layered over config.
func newRenderer(flags *renderFlags, cfg *config.Config) (*reviewdoc.Renderer, error) {
	var opts []reviewdoc.Option

	style := flags.style
	if style == "" {
		style = cfg.Style.Name
	}
	if style != "" {
		opts = append(opts, reviewdoc.WithStyle(style))
	}

	dateFormat := flags.dateFormat
	if dateFormat == "" {
		dateFormat = cfg.Footer.DateFormat
	}
	if dateFormat != "" {
		layout, err := dateutil.ResolveLayout(dateFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, reviewdoc.WithDateLayout(layout))
	}

	return reviewdoc.NewRenderer(opts...)
}

// writePreview renders the email body preview HTML.
func writePreview(ctx context.Context, renderer *reviewdoc.Renderer, flags *renderFlags, cfg *config.Config, inputPath, content string) error {
	body, err := renderer.Preview(ctx, content)
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(flags.output.path, cfg.Output.DefaultDir, inputPath, "html")
	if err := os.WriteFile(outputPath, []byte(body), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Printf("Created %s\n", outputPath)
	}
	return nil
}

// readInput returns the input path and markdown content. The marker
// "-" reads from stdin.
func readInput(positionalArgs []string) (string, string, error) {
	if len(positionalArgs) == 0 {
		return "", "", ErrNoInput
	}
	path := positionalArgs[0]

	if path == stdinMarker {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		return "review", string(data), nil
	}

	if !fileutil.IsMarkdown(path) {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return path, string(data), nil
}

// resolveDocumentName picks the flag value, then config, then the
// input filename without extension.
func resolveDocumentName(flagName, cfgName, inputPath string) string {
	if flagName != "" {
		return flagName
	}
	if cfgName != "" {
		return cfgName
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// resolveFormat picks the flag value, then config, then docx.
func resolveFormat(flagFormat, cfgFormat string) reviewdoc.Format {
	if flagFormat != "" {
		return reviewdoc.Format(flagFormat)
	}
	if cfgFormat != "" {
		return reviewdoc.Format(cfgFormat)
	}
	return reviewdoc.FormatDOCX
}

// resolveOutputPath picks the explicit path, or derives one from the
// input filename and format extension, placed in defaultDir when set.
func resolveOutputPath(explicit, defaultDir, inputPath, ext string) string {
	if explicit != "" {
		return explicit
	}
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + "." + ext
	if defaultDir != "" {
		return filepath.Join(defaultDir, name)
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}
