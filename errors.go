package reviewdoc

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrEncodeDocument    = errors.New("document encoding failed")
	ErrPreviewRender     = errors.New("preview rendering failed")
	ErrStyleLoad         = errors.New("failed to load style")
)
