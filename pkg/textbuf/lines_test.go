package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLines(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		assert.Empty(t, BuildLines(nil))
		assert.Empty(t, BuildLines([]byte{}))
	})

	t.Run("single line no newline", func(t *testing.T) {
		lines := BuildLines([]byte("hello"))
		require.Len(t, lines, 1)
		assert.Equal(t, LineInfo{StartOffset: 0, NewlineStart: 5, EndOffset: 5}, lines[0])
	})

	t.Run("trailing newline adds empty last line", func(t *testing.T) {
		lines := BuildLines([]byte("a\n"))
		require.Len(t, lines, 2)
		assert.Equal(t, LineInfo{StartOffset: 0, NewlineStart: 1, EndOffset: 2}, lines[0])
		assert.Equal(t, LineInfo{StartOffset: 2, NewlineStart: 2, EndOffset: 2}, lines[1])
	})

	t.Run("lf lines", func(t *testing.T) {
		lines := BuildLines([]byte("ab\ncd\nef"))
		require.Len(t, lines, 3)
		assert.Equal(t, LineInfo{StartOffset: 0, NewlineStart: 2, EndOffset: 3}, lines[0])
		assert.Equal(t, LineInfo{StartOffset: 3, NewlineStart: 5, EndOffset: 6}, lines[1])
		assert.Equal(t, LineInfo{StartOffset: 6, NewlineStart: 8, EndOffset: 8}, lines[2])
	})

	t.Run("crlf lines", func(t *testing.T) {
		lines := BuildLines([]byte("ab\r\ncd"))
		require.Len(t, lines, 2)
		assert.Equal(t, LineInfo{StartOffset: 0, NewlineStart: 2, EndOffset: 4}, lines[0])
		assert.Equal(t, LineInfo{StartOffset: 4, NewlineStart: 6, EndOffset: 6}, lines[1])
	})
}

func TestLineIndexAt(t *testing.T) {
	snap := NewSnapshot("test.cs", []byte("ab\ncd\nef"))

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"start of first line", 0, 0},
		{"inside first line", 1, 0},
		{"newline belongs to its line", 2, 0},
		{"start of second line", 3, 1},
		{"start of last line", 6, 2},
		{"past end clamps to last line", 100, 2},
		{"negative offset", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, snap.LineIndexAt(tt.offset))
		})
	}

	t.Run("empty content", func(t *testing.T) {
		empty := NewSnapshot("empty.cs", nil)
		assert.Equal(t, -1, empty.LineIndexAt(0))
	})
}

func TestLineAt(t *testing.T) {
	snap := NewSnapshot("test.cs", []byte("ab\ncd\nef"))

	line, col := snap.LineAt(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = snap.LineAt(4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)

	line, col = snap.LineAt(-5)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)
}

func TestOffset(t *testing.T) {
	snap := NewSnapshot("test.cs", []byte("ab\ncd\nef"))

	assert.Equal(t, 0, snap.Offset(1, 1))
	assert.Equal(t, 4, snap.Offset(2, 2))
	assert.Equal(t, 6, snap.Offset(3, 1))

	// Round trip with LineAt.
	line, col := snap.LineAt(4)
	assert.Equal(t, 4, snap.Offset(line, col))

	assert.Equal(t, -1, snap.Offset(0, 1))
	assert.Equal(t, -1, snap.Offset(4, 1))
	assert.Equal(t, -1, snap.Offset(1, 0))
	assert.Equal(t, -1, snap.Offset(1, 9))
}

func TestLineText(t *testing.T) {
	snap := NewSnapshot("test.cs", []byte("ab\r\ncd\nef"))

	assert.Equal(t, "ab", string(snap.LineText(0)))
	assert.Equal(t, "cd", string(snap.LineText(1)))
	assert.Equal(t, "ef", string(snap.LineText(2)))
	assert.Nil(t, snap.LineText(-1))
	assert.Nil(t, snap.LineText(3))
}

func TestLineRange(t *testing.T) {
	snap := NewSnapshot("test.cs", []byte("ab\ncd"))

	assert.Equal(t, Range{Start: 0, End: 2}, snap.LineRange(0))
	assert.Equal(t, Range{Start: 3, End: 5}, snap.LineRange(1))
	assert.Equal(t, Range{}, snap.LineRange(7))
}

func TestRange(t *testing.T) {
	a := Range{Start: 2, End: 5}

	assert.Equal(t, 3, a.Len())
	assert.False(t, a.IsEmpty())
	assert.True(t, Range{Start: 4, End: 4}.IsEmpty())

	assert.True(t, a.Intersects(Range{Start: 4, End: 8}))
	assert.True(t, a.Intersects(Range{Start: 0, End: 3}))
	assert.False(t, a.Intersects(Range{Start: 5, End: 8}))
	assert.False(t, a.Intersects(Range{Start: 0, End: 2}))
}
