// Package textbuf provides the text-buffer abstraction consumed by the
// natural-text taggers. It defines:
// - Snapshot: an immutable, versioned view of a document
// - Buffer: the mutable owner of the current snapshot, applying edits
// - ChangeEvent: per-edit line-delta notifications for incremental rescans
package textbuf

// Snapshot is an immutable view of a document at a specific version.
// It holds the raw content and line metadata. Taggers key their cached
// state to the snapshot Version; a query against a superseded version
// yields nothing.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Version increases monotonically with each applied edit.
	Version int64

	// Content is the full document bytes.
	Content []byte

	// Lines contains metadata for each line in the document.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a document.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of content).
	EndOffset int
}

// NewSnapshot creates a version-zero Snapshot from content.
func NewSnapshot(path string, content []byte) *Snapshot {
	return &Snapshot{
		Path:    path,
		Version: 0,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// Range is a byte range in a snapshot's content.
type Range struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Intersects returns true if the two ranges overlap by at least one byte.
func (r Range) Intersects(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Position represents a 1-based line and column in a document.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}
