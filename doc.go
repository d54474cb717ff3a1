// Package reviewdoc renders legal research review results into
// transport-ready documents (DOCX, PDF, or HTML).
//
// # Quick Start
//
// Create a renderer, render markdown-flavored content, and hand the
// base64 payload to the surrounding service:
//
//	r, err := reviewdoc.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := r.Render(ctx, reviewdoc.Input{
//	    Content:      "# Findings\n\nSee [Smith v. Jones](http://example.com/case).",
//	    DocumentName: "matter-4821",
//	    Format:       reviewdoc.FormatDOCX,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	attach(result.Data, result.MIMEType)
//
// # Rendering Pipeline
//
// Rendering follows two sequential stages:
//
//  1. Markdown normalization (link extraction, outline breaks, blank
//     line collapsing, bullet conversion)
//  2. Document assembly (paragraph segmentation, link re-insertion as
//     styled runs, format-specific layout)
//
// The renderer performs no I/O, holds no shared state, and is safe for
// concurrent use. Malformed input never fails a render: unmatched
// links degrade to plain text and empty content yields a document with
// only its title, metadata, and footer blocks. The single error class
// is encoding failure when serializing the binary container.
//
// # Email Body Preview
//
// Preview converts the raw markdown to a standalone HTML document via
// Goldmark (GFM, syntax highlighting) for use as the message body that
// accompanies the rendered attachment.
package reviewdoc
