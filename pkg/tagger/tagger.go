// Package tagger defines the natural-text tagging capability interface and
// the content-type registry that maps content-type identifiers to tagger
// factories. Dispatch is a plain decision table: the C-style lexical scanner
// for C-like source, a goldmark-backed adapter for Markdown, and a
// whole-line tagger for plain text.
package tagger

import (
	"iter"

	"github.com/yaklabco/gospellscan/pkg/natural"
	"github.com/yaklabco/gospellscan/pkg/spellconfig"
	"github.com/yaklabco/gospellscan/pkg/textbuf"
)

// NaturalTextTagger is the capability interface all taggers implement.
type NaturalTextTagger interface {
	// Rescan applies a buffer change notification to any cached state.
	Rescan(ev textbuf.ChangeEvent)

	// Tags yields the natural-text spans intersecting the requested ranges
	// of the given snapshot. The sequence is lazy, finite, and re-derived
	// per call; a query against a superseded snapshot yields nothing.
	Tags(snap *textbuf.Snapshot, ranges []textbuf.Range) iter.Seq[natural.Span]

	// OnTagsChanged registers a callback invoked with the 0-based inclusive
	// line range whose tagging may have changed after a rescan.
	OnTagsChanged(fn func(startLine, endLine int))
}

// Factory creates a tagger for a document snapshot under a configuration
// snapshot. The configuration is treated as immutable by the tagger.
type Factory func(snap *textbuf.Snapshot, cfg *spellconfig.Config) NaturalTextTagger
