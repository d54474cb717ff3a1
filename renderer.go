package reviewdoc

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"time"

	"github.com/lexgen/go-reviewdoc/internal/assets"
	"github.com/lexgen/go-reviewdoc/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.Normalizer = (*pipeline.MarkdownNormalizer)(nil)
	_ assembler           = (*docxAssembler)(nil)
	_ assembler           = (*pdfAssembler)(nil)
	_ assembler           = (*htmlAssembler)(nil)
	_ previewRenderer     = (*goldmarkPreview)(nil)
)

// headingPrefix marks blocks that kept their 1-3 hash header prefix
// through normalization; assemblers style these as headings.
var headingPrefix = regexp.MustCompile(`^#{1,3} `)

// defaultDateLayout formats the footer generation timestamp.
const defaultDateLayout = "January 2, 2006 at 15:04"

// assembler lays a report into a document container.
type assembler interface {
	Assemble(rep *report) ([]byte, error)
	MIMEType() string
}

// report is the format-independent layout handed to assemblers: a
// title block, metadata lines, paragraph blocks, and a footer
// timestamp, in document order.
type report struct {
	Title       string
	Meta        []string
	Paragraphs  []paragraph
	GeneratedAt string
}

// paragraph is one segmented block with its rebuilt runs.
type paragraph struct {
	Text    string
	Heading bool
	Runs    []pipeline.Run
}

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	now        func() time.Time
	dateLayout string
	styleName  string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithNow sets the clock used for the footer timestamp.
// Panics if now is nil (programmer error, similar to time.NewTicker).
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("reviewdoc: WithNow clock must not be nil")
	}
	return func(r *Renderer) {
		r.cfg.now = now
	}
}

// WithDateLayout sets the Go time layout for the footer timestamp.
func WithDateLayout(layout string) Option {
	return func(r *Renderer) {
		r.cfg.dateLayout = layout
	}
}

// WithStyle selects the embedded CSS style used by the HTML assembler.
func WithStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.styleName = name
	}
}

// Renderer orchestrates the markdown-to-document pipeline. It is
// stateless across renders and safe for concurrent use.
type Renderer struct {
	cfg        rendererConfig
	normalizer pipeline.Normalizer
	assemblers map[Format]assembler
	preview    previewRenderer
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithDateLayout).
// Returns an error if the selected HTML style cannot be loaded.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			now:        time.Now,
			dateLayout: defaultDateLayout,
			styleName:  assets.DefaultStyleName,
		},
		normalizer: &pipeline.MarkdownNormalizer{},
		preview:    newGoldmarkPreview(),
	}

	for _, opt := range opts {
		opt(r)
	}

	css, err := assets.NewEmbeddedLoader().LoadStyle(r.cfg.styleName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleLoad, err)
	}

	r.assemblers = map[Format]assembler{
		FormatDOCX: &docxAssembler{},
		FormatPDF:  &pdfAssembler{},
		FormatHTML: &htmlAssembler{css: css},
	}

	return r, nil
}

// Render runs the full pipeline and returns the document encoded for
// transport. The context is checked between stages; an in-progress
// stage is never interrupted (renders are bounded by input length).
//
// Irregular input degrades gracefully and never fails the call: the
// only error classes are an unsupported format and encoding failure
// during binary serialization.
func (r *Renderer) Render(ctx context.Context, input Input) (*Result, error) {
	if err := input.Format.Validate(); err != nil {
		return nil, err
	}
	asm := r.assemblers[input.Format]

	norm := r.normalizer.Normalize(input.Content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	rep := r.buildReport(norm, input)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := asm.Assemble(rep)
	if err != nil {
		return nil, fmt.Errorf("assembling %s document: %w", input.Format, err)
	}

	return &Result{
		Data:     base64.StdEncoding.EncodeToString(data),
		MIMEType: asm.MIMEType(),
	}, nil
}

// buildReport segments normalized text into paragraphs, rebuilds each
// as runs, and attaches the title, metadata, and footer blocks.
func (r *Renderer) buildReport(norm pipeline.Normalized, input Input) *report {
	blocks := pipeline.SplitParagraphs(norm.Text)
	paras := make([]paragraph, 0, len(blocks))
	for _, b := range blocks {
		paras = append(paras, paragraph{
			Text:    b,
			Heading: headingPrefix.MatchString(b),
			Runs:    pipeline.ParagraphRuns(b, norm.Links),
		})
	}

	return &report{
		Title: fmt.Sprintf("Legal %s Review Results", input.Role()),
		Meta: []string{
			"Document: " + input.DocumentName,
			"Role: " + input.Role(),
		},
		Paragraphs:  paras,
		GeneratedAt: r.cfg.now().Format(r.cfg.dateLayout),
	}
}
