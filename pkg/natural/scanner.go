package natural

import (
	"iter"

	"github.com/yaklabco/gospellscan/pkg/spellconfig"
	"github.com/yaklabco/gospellscan/pkg/textbuf"
)

// Dialect selects the C-style language variant being scanned.
type Dialect uint8

const (
	// DialectCSharp enables verbatim/interpolated string forms.
	DialectCSharp Dialect = iota

	// DialectC enables R"..." raw strings and include-path suppression.
	DialectC
)

// Scanner is the incremental lexical scanner. It owns a per-line cache of
// end-of-line states for one document; on buffer changes it resizes the
// cache and re-scans only the minimal dirty range; on tag queries it replays
// the cached state plus a line-local scan to produce natural-text spans.
//
// The cache is single-writer: only Rescan mutates it. Queries are read-only
// and verify snapshot identity before trusting cached state, so the host may
// issue them from a worker thread as long as edits do not race them.
type Scanner struct {
	cfg     *spellconfig.Config
	dialect Dialect

	snap *textbuf.Snapshot

	// states[i] is the lexical state at the end of line i. Its length always
	// equals the snapshot's line count.
	states []LineState

	changed []func(startLine, endLine int)
}

// NewScanner creates a scanner for the given snapshot and scans the whole
// document once to seed the per-line cache.
func NewScanner(snap *textbuf.Snapshot, cfg *spellconfig.Config, dialect Dialect) *Scanner {
	s := &Scanner{cfg: cfg, dialect: dialect, snap: snap}
	s.fullScan()
	return s
}

// OnTagsChanged registers a callback invoked after each rescan with the
// 0-based inclusive line range whose tagging may have changed.
func (s *Scanner) OnTagsChanged(fn func(startLine, endLine int)) {
	s.changed = append(s.changed, fn)
}

// Snapshot returns the snapshot the cache currently describes.
func (s *Scanner) Snapshot() *textbuf.Snapshot {
	return s.snap
}

// LineStates returns a copy of the per-line cache. Test hook.
func (s *Scanner) LineStates() []LineState {
	out := make([]LineState, len(s.states))
	copy(out, s.states)
	return out
}

func (s *Scanner) fullScan() {
	count := s.snap.LineCount()
	s.states = make([]LineState, count)

	state := StateDefault
	for line := 0; line < count; line++ {
		state = s.scanLine(s.snap, line, state, nil)
		s.states[line] = state
	}
}

// stateBefore returns the state the given line starts in.
func (s *Scanner) stateBefore(line int) LineState {
	if line <= 0 || line-1 >= len(s.states) {
		return StateDefault
	}
	return s.states[line-1]
}

// scanLine runs the state machine over one line, emitting natural-text
// spans through emit (nil for state-only scans), and returns the
// end-of-line state.
func (s *Scanner) scanLine(snap *textbuf.Snapshot, line int, state LineState, emit func(Span)) LineState {
	ls := &lineScan{
		cfg:     s.cfg,
		dialect: s.dialect,
		cur:     newLineCursor(snap.LineText(line), snap.Lines[line].StartOffset),
		emit:    emit,
		state:   state,
	}
	return ls.run()
}

// Rescan applies a buffer change: it first adjusts the cache length for
// every edited region so the cache matches the new line count, then
// re-scans each region's minimal dirty range. Resizing before re-scanning
// is a hard ordering requirement; re-scanning first would index past the
// cache on inserts.
func (s *Scanner) Rescan(ev textbuf.ChangeEvent) {
	snap := ev.Snapshot
	if snap == nil {
		return
	}

	for _, region := range ev.Regions {
		s.resize(region)
	}

	// The per-region deltas should leave the cache at the new line count;
	// anything else is a malformed notification, recovered by refitting.
	if len(s.states) != snap.LineCount() {
		s.refit(snap.LineCount())
	}

	s.snap = snap

	for _, region := range ev.Regions {
		first, last := s.rescanRegion(snap, region)
		for _, fn := range s.changed {
			fn(first, last)
		}
	}
}

// resize grows or shrinks the cache for one edited region. Inserted entries
// copy the state at the insertion point so a continued block comment does
// not spuriously terminate before the content rescan runs.
func (s *Scanner) resize(region textbuf.LineDelta) {
	diff := region.NewLines - region.OldLines
	if diff == 0 {
		return
	}

	at := region.StartLine
	if at < 0 {
		at = 0
	}
	if at >= len(s.states) {
		at = len(s.states) - 1
	}

	if diff > 0 {
		propagated := StateDefault
		if at >= 0 {
			propagated = s.states[at]
		}
		insert := make([]LineState, diff)
		for i := range insert {
			insert[i] = propagated
		}
		pos := at + 1
		if pos > len(s.states) {
			pos = len(s.states)
		}
		s.states = append(s.states[:pos], append(insert, s.states[pos:]...)...)
		return
	}

	removeFrom := at + 1
	removeTo := removeFrom - diff
	if removeTo > len(s.states) {
		removeTo = len(s.states)
	}
	if removeFrom < len(s.states) {
		s.states = append(s.states[:removeFrom], s.states[removeTo:]...)
	}
}

// refit forces the cache to the given length. Fallback for malformed
// change notifications; the subsequent rescan repairs content.
func (s *Scanner) refit(count int) {
	if count <= len(s.states) {
		s.states = s.states[:count]
		return
	}
	for len(s.states) < count {
		s.states = append(s.states, StateDefault)
	}
}

// rescanRegion re-scans from the region's first line, advancing until the
// freshly computed end-of-line state matches the cached state and all dirty
// lines are covered. This bounds the re-scan to the minimal affected range,
// which may extend far past the edit when a comment's open/close balance
// changed. Returns the inclusive line range actually updated.
func (s *Scanner) rescanRegion(snap *textbuf.Snapshot, region textbuf.LineDelta) (int, int) {
	first := region.StartLine
	if first < 0 {
		first = 0
	}
	lastDirty := region.StartLine + region.NewLines - 1

	state := s.stateBefore(first)
	last := first

	for line := first; line < snap.LineCount(); line++ {
		next := s.scanLine(snap, line, state, nil)
		cached := s.states[line]
		s.states[line] = next
		state = next
		last = line

		if line >= lastDirty && next == cached {
			break
		}
	}

	return first, last
}

// Tags yields the natural-text spans intersecting the requested ranges of
// the given snapshot. The sequence is lazy, finite, and re-derived on every
// call; only line states are cached, never spans. If the snapshot does not
// match the scanner's current cached snapshot the query yields nothing and
// the caller must re-request against the current snapshot.
func (s *Scanner) Tags(snap *textbuf.Snapshot, ranges []textbuf.Range) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		if snap == nil || s.snap == nil || snap.Version != s.snap.Version {
			return
		}

		for _, rng := range ranges {
			if rng.End <= rng.Start {
				continue
			}

			startLine := snap.LineIndexAt(rng.Start)
			endLine := snap.LineIndexAt(rng.End - 1)
			if startLine < 0 {
				continue
			}

			done := false
			for line := startLine; line <= endLine; line++ {
				s.scanLine(snap, line, s.stateBefore(line), func(sp Span) {
					if done || !sp.Intersects(rng) {
						return
					}
					if !yield(sp) {
						done = true
					}
				})
				if done {
					return
				}
			}
		}
	}
}

// DocumentRange returns a single range covering the whole snapshot, for
// whole-document queries.
func DocumentRange(snap *textbuf.Snapshot) []textbuf.Range {
	return []textbuf.Range{{Start: 0, End: len(snap.Content)}}
}
