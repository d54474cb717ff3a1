// Package pipeline contains the text stages of the document renderer.
//
// The normalizer rewrites markdown-flavored source text into a plain
// structured form plus an extracted hyperlink list. The segmentation
// helpers then cut the normalized text into paragraph blocks and
// rebuild each block as a sequence of styled runs.
//
// Each stage is a pure function over a complete string: its output is
// an independently valid string, and no stage depends on another
// stage's internal state.
package pipeline
