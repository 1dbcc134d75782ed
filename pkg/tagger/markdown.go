package tagger

import (
	"iter"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gospellscan/pkg/natural"
	"github.com/yaklabco/gospellscan/pkg/spellconfig"
	"github.com/yaklabco/gospellscan/pkg/textbuf"
)

// markdownTagger is a thin adapter over goldmark: it re-parses the whole
// document per query and yields the text segments of prose nodes, skipping
// code blocks, code spans, and raw HTML. It carries no incremental state;
// the lexical scanner is the incremental path, Markdown is not.
type markdownTagger struct {
	snap    *textbuf.Snapshot
	md      goldmark.Markdown
	changed []func(startLine, endLine int)
}

// NewMarkdownTagger creates the goldmark-backed tagger. The configuration
// snapshot is accepted for interface symmetry; Markdown prose has no
// comment/string styles to filter.
func NewMarkdownTagger(snap *textbuf.Snapshot, _ *spellconfig.Config) NaturalTextTagger {
	return &markdownTagger{
		snap: snap,
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Rescan replaces the tracked snapshot. The whole document is considered
// changed since there is no per-line cache to narrow the range.
func (t *markdownTagger) Rescan(ev textbuf.ChangeEvent) {
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
func (t *markdownTagger) OnTagsChanged(fn func(startLine, endLine int)) {
	t.changed = append(t.changed, fn)
}

// Tags yields prose text segments intersecting the requested ranges.
func (t *markdownTagger) Tags(snap *textbuf.Snapshot, ranges []textbuf.Range) iter.Seq[natural.Span] {
	return func(yield func(natural.Span) bool) {
		if snap == nil || t.snap == nil || snap.Version != t.snap.Version {
			return
		}

		doc := t.md.Parser().Parse(text.NewReader(snap.Content))

		// Goldmark fragments prose into several Text nodes per line, so
		// byte-adjacent segments are merged into one span before yielding.
		pending := textbuf.Range{}
		flush := func() bool {
			if pending.IsEmpty() {
				return true
			}
			span := natural.Span{Range: pending, Kind: natural.KindPlainText}
			pending = textbuf.Range{}
			for _, rng := range ranges {
				if span.Intersects(rng) {
					return yield(span)
				}
			}
			return true
		}

		done := false
		_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if done {
				return ast.WalkStop, nil
			}
			if !entering {
				return ast.WalkContinue, nil
			}

			switch node := n.(type) {
			case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.CodeSpan,
				*ast.HTMLBlock, *ast.RawHTML, *ast.AutoLink:
				if !flush() {
					done = true
					return ast.WalkStop, nil
				}
				return ast.WalkSkipChildren, nil
			case *ast.Text:
				seg := node.Segment
				if !pending.IsEmpty() && seg.Start == pending.End {
					pending.End = seg.Stop
					return ast.WalkContinue, nil
				}
				if !flush() {
					done = true
					return ast.WalkStop, nil
				}
				pending = textbuf.Range{Start: seg.Start, End: seg.Stop}
			}
			return ast.WalkContinue, nil
		})

		if !done {
			_ = flush()
		}
	}
}
