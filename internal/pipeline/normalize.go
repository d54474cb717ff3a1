package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Markdown inline link [label](url)
	markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// ATX header with 1-3 hashes
	headerLine = regexp.MustCompile(`(?m)^(#{1,3} .*)$`)

	// Emphasis markers
	boldMarker   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicMarker = regexp.MustCompile(`\*([^*]+)\*`)

	// Two consecutive outline enumerators on one line, Latin and Roman
	// variants of the same shape
	latinOutlineRun = regexp.MustCompile(`([A-Z]\.\s+[^.]*?\.)\s+([A-Z]\.\s+)`)
	romanOutlineRun = regexp.MustCompile(`([IVXLCDM]+\.\s+[^.]*?\.)\s+([IVXLCDM]+\.\s+)`)

	// Runs of blank lines
	blankLineRun = regexp.MustCompile(`\n{3,}`)

	// List markers at line start, unordered and ordered
	unorderedListMarker = regexp.MustCompile(`(?m)^[-*+] (.*)$`)
	orderedListMarker   = regexp.MustCompile(`(?m)^[0-9]+\. (.*)$`)
)

// Link is a hyperlink extracted from the source text. Start and End
// are character offsets of Text within the text as it stood when the
// link markup was stripped; later transformations invalidate them, so
// downstream consumers re-scan by label and use Start only to order
// candidates.
type Link struct {
	Text  string
	URL   string
	Start int
	End   int
}

// Normalized is the output of the normalizer stage.
type Normalized struct {
	Text  string
	Links []Link
}

// Normalizer defines the contract for the markdown normalization stage.
type Normalizer interface {
	Normalize(content string) Normalized
}

// MarkdownNormalizer rewrites markdown syntax into plain structured
// text with extracted hyperlink spans.
type MarkdownNormalizer struct{}

// Normalize applies all transformations in order. Order matters: link
// markup must be stripped before any pass that could shift its
// offsets further, and blank lines are collapsed before list markers
// append their own trailing newlines.
func (n *MarkdownNormalizer) Normalize(content string) Normalized {
	text, links := extractLinks(content)
	text = normalizeHeaders(text)
	text = normalizeEmphasis(text)
	text = breakOutlineRuns(text)
	text = collapseBlankLines(text)
	text = convertListMarkers(text)
	return Normalized{Text: text, Links: links}
}

// extractLinks removes every [label](url) occurrence, keeping only the
// label, and records each link with the label's offset in the evolving
// text. Offsets shrink by len(fullMatch)-len(label) per preceding
// replacement, matching the position the label occupies after removal.
func extractLinks(content string) (string, []Link) {
	matches := markdownLink.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	var b strings.Builder
	b.Grow(len(content))
	links := make([]Link, 0, len(matches))

	removed := 0
	last := 0
	for _, m := range matches {
		label := content[m[2]:m[3]]
		url := content[m[4]:m[5]]

		b.WriteString(content[last:m[0]])
		b.WriteString(label)

		start := m[0] - removed
		links = append(links, Link{
			Text:  label,
			URL:   url,
			Start: start,
			End:   start + len(label),
		})

		removed += (m[1] - m[0]) - len(label)
		last = m[1]
	}
	b.WriteString(content[last:])

	return b.String(), links
}

// normalizeHeaders matches 1-3 hash header lines and substitutes them
// unchanged. The substitution is a deliberate no-op carried over from
// the original formatting logic; output equals input.
func normalizeHeaders(content string) string {
	return headerLine.ReplaceAllString(content, "$1")
}

// normalizeEmphasis matches **bold** and *italic* spans and
// substitutes them unchanged. Deliberate no-op, same as headers;
// output equals input.
func normalizeEmphasis(content string) string {
	content = boldMarker.ReplaceAllString(content, "**$1**")
	return italicMarker.ReplaceAllString(content, "*$1*")
}

// breakOutlineRuns inserts a newline between two outline enumerators
// that share a line, e.g. "A. First point. B. Second point." becomes
// two lines. Latin letters and Roman numerals are handled by two
// independent patterns of identical shape; matches are global and
// non-overlapping.
func breakOutlineRuns(content string) string {
	content = latinOutlineRun.ReplaceAllString(content, "$1\n$2")
	return romanOutlineRun.ReplaceAllString(content, "$1\n$2")
}

// collapseBlankLines reduces 2+ consecutive blank lines to exactly one.
func collapseBlankLines(content string) string {
	return blankLineRun.ReplaceAllString(content, "\n\n")
}

// convertListMarkers rewrites "- ", "* ", "+ " and "N. " markers at
// line start to a bullet glyph, appending a trailing newline so each
// item lands in its own block.
func convertListMarkers(content string) string {
	content = unorderedListMarker.ReplaceAllString(content, "• $1\n")
	return orderedListMarker.ReplaceAllString(content, "• $1\n")
}
