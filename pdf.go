package reviewdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDF page geometry in millimeters (A4 portrait).
const (
	pdfLineHeight   = 6.0
	pdfParagraphGap = 3.0
	pdfBottomY      = 270.0 // pagination threshold; page height is 297
	pdfUsableWidth  = 190.0 // page width 210 minus default margins

	pdfTitleSize   = 16.0
	pdfHeadingSize = 13.0
	pdfBodySize    = 11.0
	pdfFooterSize  = 8.0

	// Average character width at body size, Helvetica estimate. Lines
	// are wrapped by character count, not measured glyph widths.
	pdfAvgCharWidth = 2.1
)

// pdfAssembler lays a report into fixed-width text lines, starting a
// new page whenever the vertical position crosses the bottom
// threshold. Links are not re-styled in this format.
type pdfAssembler struct{}

func (a *pdfAssembler) Assemble(rep *report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.CellFormat(0, 10, tr(rep.Title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", pdfBodySize)
	for _, line := range rep.Meta {
		pdf.CellFormat(0, pdfLineHeight, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(pdfParagraphGap)

	usableWidth := float64(pdfUsableWidth)
	maxChars := int(usableWidth / pdfAvgCharWidth)
	for _, p := range rep.Paragraphs {
		if p.Heading {
			pdf.SetFont("Helvetica", "B", pdfHeadingSize)
		} else {
			pdf.SetFont("Helvetica", "", pdfBodySize)
		}
		for _, line := range wrapLines(p.Text, maxChars) {
			if pdf.GetY() > pdfBottomY {
				pdf.AddPage()
			}
			pdf.CellFormat(0, pdfLineHeight, tr(line), "", 1, "L", false, 0, "")
		}
		pdf.Ln(pdfParagraphGap)
	}

	if pdf.GetY() > pdfBottomY {
		pdf.AddPage()
	}
	pdf.SetFont("Helvetica", "I", pdfFooterSize)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, pdfLineHeight, tr("Generated "+rep.GeneratedAt), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeDocument, err)
	}
	return buf.Bytes(), nil
}

func (a *pdfAssembler) MIMEType() string { return MIMETypePDF }

// wrapLines breaks text into lines of at most width characters,
// splitting on spaces. A word longer than width gets its own line
// rather than being cut.
func wrapLines(text string, width int) []string {
	var lines []string
	for _, src := range strings.Split(text, "\n") {
		words := strings.Fields(src)
		if len(words) == 0 {
			continue
		}
		current := words[0]
		for _, w := range words[1:] {
			if len(current)+1+len(w) > width {
				lines = append(lines, current)
				current = w
				continue
			}
			current += " " + w
		}
		lines = append(lines, current)
	}
	return lines
}
