package pipeline

import (
	"sort"
	"strings"
)

// RunKind classifies a run within a paragraph. Assemblers map kinds to
// format-specific styling.
type RunKind int

const (
	RunPlain RunKind = iota // regular paragraph text
	RunLink                 // matched hyperlink label
	RunURL                  // appended " (url)" annotation
)

// Run is the atomic renderable unit inside a paragraph.
type Run struct {
	Text string
	Kind RunKind
}

// SplitParagraphs cuts normalized text into paragraph blocks: first on
// blank-line boundaries, then on single-newline remnants left by
// outline-break insertion. Blocks that are empty after trimming are
// discarded.
func SplitParagraphs(text string) []string {
	var blocks []string
	for _, candidate := range strings.Split(text, "\n\n") {
		for _, block := range strings.Split(candidate, "\n") {
			block = strings.TrimSpace(block)
			if block == "" {
				continue
			}
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// ParagraphRuns rebuilds a paragraph as runs, re-inserting extracted
// links. Candidates are the links whose label occurs in the paragraph,
// walked in order of their original extraction offset with a moving
// cursor. Each match emits the preceding plain text, the label as a
// link run, and a " (url)" annotation run.
//
// Known fidelity limit: ordering by extraction offset rather than by
// position within this paragraph can attach styling to the wrong
// occurrence when the same label text repeats. Unmatched links degrade
// to plain text, and the concatenation of all non-URL runs always
// equals the paragraph text.
func ParagraphRuns(text string, links []Link) []Run {
	candidates := make([]Link, 0, len(links))
	for _, l := range links {
		if l.Text != "" && strings.Contains(text, l.Text) {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		return []Run{{Text: text, Kind: RunPlain}}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Start < candidates[j].Start
	})

	var runs []Run
	cursor := 0
	for _, l := range candidates {
		idx := strings.Index(text[cursor:], l.Text)
		if idx < 0 {
			continue
		}
		at := cursor + idx
		if at > cursor {
			runs = append(runs, Run{Text: text[cursor:at], Kind: RunPlain})
		}
		runs = append(runs, Run{Text: l.Text, Kind: RunLink})
		runs = append(runs, Run{Text: " (" + l.URL + ")", Kind: RunURL})
		cursor = at + len(l.Text)
	}
	if len(runs) == 0 {
		return []Run{{Text: text, Kind: RunPlain}}
	}
	if cursor < len(text) {
		runs = append(runs, Run{Text: text[cursor:], Kind: RunPlain})
	}
	return runs
}
