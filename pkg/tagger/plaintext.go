package tagger

import (
	"bytes"
	"iter"

	"github.com/yaklabco/gospellscan/pkg/natural"
	"github.com/yaklabco/gospellscan/pkg/spellconfig"
	"github.com/yaklabco/gospellscan/pkg/textbuf"
)

// plaintextTagger treats every non-blank line as one natural-text span.
// It is the fallback for unrecognized content types.
type plaintextTagger struct {
	snap    *textbuf.Snapshot
	changed []func(startLine, endLine int)
}

// NewPlainTextTagger creates the whole-line fallback tagger.
func NewPlainTextTagger(snap *textbuf.Snapshot, _ *spellconfig.Config) NaturalTextTagger {
	return &plaintextTagger{snap: snap}
}

// Rescan replaces the tracked snapshot.
func (t *plaintextTagger) Rescan(ev textbuf.ChangeEvent) {
	if ev.Snapshot == nil {
		return
	}
	t.snap = ev.Snapshot

	last := ev.Snapshot.LineCount() - 1
	if last < 0 {
		last = 0
	}
	for _, fn := range t.changed {
		fn(0, last)
	}
}

// OnTagsChanged registers a callback invoked after each rescan.
func (t *plaintextTagger) OnTagsChanged(fn func(startLine, endLine int)) {
	t.changed = append(t.changed, fn)
}

// Tags yields one span per non-blank line intersecting the requested ranges.
func (t *plaintextTagger) Tags(snap *textbuf.Snapshot, ranges []textbuf.Range) iter.Seq[natural.Span] {
	return func(yield func(natural.Span) bool) {
		if snap == nil || t.snap == nil || snap.Version != t.snap.Version {
			return
		}

		for line := 0; line < snap.LineCount(); line++ {
			if len(bytes.TrimSpace(snap.LineText(line))) == 0 {
				continue
			}

			span := natural.Span{
				Range: snap.LineRange(line),
				Kind:  natural.KindPlainText,
			}
			for _, rng := range ranges {
				if span.Intersects(rng) {
					if !yield(span) {
						return
					}
					break
				}
			}
		}
	}
}
