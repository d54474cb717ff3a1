package main

import (
	"errors"
	"os"

	reviewdoc "github.com/lexgen/go-reviewdoc"
	"github.com/lexgen/go-reviewdoc/internal/config"
)

// Exit codes for the reviewdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitEncode  = 4 // Document encoding failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Encoding errors (exit 4)
	if errors.Is(err, reviewdoc.ErrEncodeDocument) ||
		errors.Is(err, reviewdoc.ErrPreviewRender) {
		return ExitEncode
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, reviewdoc.ErrUnsupportedFormat) ||
		errors.Is(err, reviewdoc.ErrStyleLoad) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
