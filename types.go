package reviewdoc

import "fmt"

// Format identifies the output document container.
type Format string

// Supported output formats.
const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// MIME types for the supported formats.
const (
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypePDF  = "application/pdf"
	MIMETypeHTML = "text/html"
)

// Validate checks that the format is one of the supported containers.
func (f Format) Validate() error {
	switch f {
	case FormatDOCX, FormatPDF, FormatHTML:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

// Input contains rendering parameters.
type Input struct {
	Content      string // Markdown-flavored source text (may be empty)
	DocumentName string // Shown on the document's metadata line
	ForDefendant bool   // Selects the defendant report variant
	Format       Format // Output container (required)
}

// Role returns the report variant name selected by ForDefendant.
func (in Input) Role() string {
	if in.ForDefendant {
		return "Defendant"
	}
	return "Plaintiff"
}

// Result is the rendered document, encoded for transport as an email
// attachment payload.
type Result struct {
	Data     string // Base64-encoded document bytes
	MIMEType string
}
