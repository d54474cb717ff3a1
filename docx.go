package reviewdoc

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"

	"github.com/lexgen/go-reviewdoc/internal/pipeline"
)

// DOCX run styling. Sizes are OOXML half-points.
const (
	docxTitleSize   = "32" // 16pt
	docxHeadingSize = "26" // 13pt
	docxURLSize     = "18" // 9pt
	docxFooterSize  = "16" // 8pt

	docxLinkColor  = "0563C1" // Word's hyperlink blue
	docxMutedColor = "808080"
)

// docxAssembler lays a report into an OOXML wordprocessing document.
type docxAssembler struct{}

// Assemble builds the document top to bottom: centered title, bold
// metadata lines, one paragraph per block with link runs styled
// (colored + underlined label, muted URL annotation), muted footer.
func (a *docxAssembler) Assemble(rep *report) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph().Justification("center")
	title.AddText(rep.Title).Size(docxTitleSize).Bold()

	for _, line := range rep.Meta {
		doc.AddParagraph().AddText(line).Bold()
	}

	for _, p := range rep.Paragraphs {
		para := doc.AddParagraph()
		for _, run := range p.Runs {
			switch run.Kind {
			case pipeline.RunLink:
				para.AddText(run.Text).Color(docxLinkColor).Underline("single")
			case pipeline.RunURL:
				para.AddText(run.Text).Color(docxMutedColor).Size(docxURLSize)
			default:
				text := para.AddText(run.Text)
				if p.Heading {
					text.Bold().Size(docxHeadingSize)
				}
			}
		}
	}

	footer := doc.AddParagraph()
	footer.AddText("Generated " + rep.GeneratedAt).Color(docxMutedColor).Size(docxFooterSize)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeDocument, err)
	}
	return buf.Bytes(), nil
}

func (a *docxAssembler) MIMEType() string { return MIMETypeDOCX }
