package textbuf

import "sort"

// BuildLines constructs line metadata from document content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the snapshot.
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// LineIndexAt returns the 0-based line index containing the given byte offset.
// Offsets at or past the end of content map to the last line.
// Returns -1 for negative offsets or empty content.
func (s *Snapshot) LineIndexAt(offset int) int {
	if offset < 0 || len(s.Lines) == 0 {
		return -1
	}

	if offset >= len(s.Content) {
		return len(s.Lines) - 1
	}

	// Binary search to find the line containing the offset.
	lineIdx := sort.Search(len(s.Lines), func(i int) bool {
		return s.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(s.Lines) {
		lineIdx = len(s.Lines) - 1
	}

	return lineIdx
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (s *Snapshot) LineAt(offset int) (int, int) {
	lineIdx := s.LineIndexAt(offset)
	if lineIdx < 0 {
		return 0, 0
	}

	lineInfo := s.Lines[lineIdx]
	if offset < lineInfo.StartOffset {
		return 0, 0
	}

	// 1-based line and column.
	return lineIdx + 1, offset - lineInfo.StartOffset + 1
}

// Offset converts a 1-based line and byte column to a byte offset.
// Returns -1 when the position does not exist in the document.
func (s *Snapshot) Offset(line, col int) int {
	if line < 1 || line > len(s.Lines) || col < 1 {
		return -1
	}

	lineInfo := s.Lines[line-1]
	offset := lineInfo.StartOffset + col - 1
	if offset > lineInfo.NewlineStart {
		return -1
	}
	return offset
}

// LineText returns the content of a 0-based line index, excluding the newline.
// Returns nil if the index is out of range.
func (s *Snapshot) LineText(idx int) []byte {
	if idx < 0 || idx >= len(s.Lines) {
		return nil
	}

	lineInfo := s.Lines[idx]
	return s.Content[lineInfo.StartOffset:lineInfo.NewlineStart]
}

// LineRange returns the byte range of a 0-based line index, excluding the newline.
func (s *Snapshot) LineRange(idx int) Range {
	if idx < 0 || idx >= len(s.Lines) {
		return Range{}
	}

	lineInfo := s.Lines[idx]
	return Range{Start: lineInfo.StartOffset, End: lineInfo.NewlineStart}
}
