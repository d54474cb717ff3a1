package reviewdoc

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps Goldmark's fragment output in a complete HTML5
// document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Review Results</title>
</head>
<body>
%s
</body>
</html>`

// previewRenderer abstracts markdown-to-HTML conversion for the email
// body preview.
type previewRenderer interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkPreview converts markdown to HTML using goldmark (pure Go).
type goldmarkPreview struct {
	md goldmark.Markdown
}

// newGoldmarkPreview creates a goldmarkPreview with GFM extensions and
// chroma syntax highlighting.
func newGoldmarkPreview() *goldmarkPreview {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &goldmarkPreview{md: md}
}

// ToHTML converts markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (p *goldmarkPreview) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Preview converts raw markdown into a standalone HTML5 document for
// use as the email body that accompanies the rendered attachment.
func (r *Renderer) Preview(ctx context.Context, content string) (string, error) {
	return r.preview.ToHTML(ctx, content)
}
