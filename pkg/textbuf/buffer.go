package textbuf

import (
	"bytes"
	"fmt"
)

// Edit replaces the byte range [Start, End) of the current snapshot with Text.
// An insertion has Start == End; a deletion has empty Text.
type Edit struct {
	Start int
	End   int
	Text  []byte
}

// LineDelta describes how one edited region changed the line structure.
// Consumers must resize any line-indexed caches from these deltas before
// re-reading line content from the new snapshot.
type LineDelta struct {
	// StartLine is the 0-based index of the first line touched by the edit.
	StartLine int

	// OldLines is the number of lines the replaced range spanned.
	OldLines int

	// NewLines is the number of lines the replacement spans.
	NewLines int
}

// ChangeEvent is delivered to listeners after each applied edit.
type ChangeEvent struct {
	// Snapshot is the new document snapshot produced by the edit.
	Snapshot *Snapshot

	// Regions holds one LineDelta per edited region.
	Regions []LineDelta
}

// Buffer owns the current snapshot of a document and applies edits to it.
// It is single-writer: all mutation is expected to happen from one goroutine,
// matching the host-editor change-event model. Listeners run synchronously
// on the mutating goroutine.
type Buffer struct {
	snap      *Snapshot
	listeners []func(ChangeEvent)
}

// NewBuffer creates a buffer holding the given initial content.
func NewBuffer(path string, content []byte) *Buffer {
	return &Buffer{snap: NewSnapshot(path, content)}
}

// Snapshot returns the current snapshot.
func (b *Buffer) Snapshot() *Snapshot {
	return b.snap
}

// OnChange registers a listener invoked synchronously after each edit.
func (b *Buffer) OnChange(fn func(ChangeEvent)) {
	b.listeners = append(b.listeners, fn)
}

// Apply replaces the byte range [edit.Start, edit.End) with edit.Text,
// producing and returning the next snapshot. Listeners receive a ChangeEvent
// carrying the line delta of the edited region.
func (b *Buffer) Apply(edit Edit) (*Snapshot, error) {
	old := b.snap

	if edit.Start < 0 || edit.End < edit.Start || edit.End > len(old.Content) {
		return nil, fmt.Errorf("edit range [%d, %d) out of bounds for %d bytes",
			edit.Start, edit.End, len(old.Content))
	}

	content := make([]byte, 0, len(old.Content)-(edit.End-edit.Start)+len(edit.Text))
	content = append(content, old.Content[:edit.Start]...)
	content = append(content, edit.Text...)
	content = append(content, old.Content[edit.End:]...)

	next := &Snapshot{
		Path:    old.Path,
		Version: old.Version + 1,
		Content: content,
		Lines:   BuildLines(content),
	}

	delta := lineDelta(old, edit)
	b.snap = next

	event := ChangeEvent{Snapshot: next, Regions: []LineDelta{delta}}
	for _, fn := range b.listeners {
		fn(event)
	}

	return next, nil
}

// lineDelta computes the line-structure change produced by an edit against
// the pre-edit snapshot.
func lineDelta(old *Snapshot, edit Edit) LineDelta {
	startLine := old.LineIndexAt(edit.Start)
	if startLine < 0 {
		startLine = 0
	}

	endLine := startLine
	if edit.End > edit.Start {
		// LineIndexAt on the last replaced byte, not the exclusive end,
		// so an edit ending exactly at a line boundary does not claim the
		// following line.
		endLine = old.LineIndexAt(edit.End - 1)
		if endLine < startLine {
			endLine = startLine
		}
	}

	oldLines := endLine - startLine + 1
	removedNewlines := bytes.Count(old.Content[edit.Start:edit.End], []byte("\n"))
	insertedNewlines := bytes.Count(edit.Text, []byte("\n"))

	return LineDelta{
		StartLine: startLine,
		OldLines:  oldLines,
		NewLines:  oldLines - removedNewlines + insertedNewlines,
	}
}
