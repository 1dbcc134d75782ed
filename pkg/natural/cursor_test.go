package natural

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gospellscan/pkg/textbuf"
)

func TestLineCursorBasics(t *testing.T) {
	c := newLineCursor([]byte("abc"), 10)

	assert.Equal(t, byte('a'), c.Ch())
	assert.Equal(t, byte('b'), c.Peek(1))
	assert.Equal(t, byte(0), c.Peek(5))
	assert.Equal(t, 10, c.Pos())

	c.Advance(2)
	assert.Equal(t, byte('c'), c.Ch())
	assert.False(t, c.EOL())

	c.Advance(100)
	assert.True(t, c.EOL())
	assert.Equal(t, byte(0), c.Ch())
	assert.Equal(t, 13, c.Pos())
}

func TestLineCursorSpans(t *testing.T) {
	c := newLineCursor([]byte("hello"), 100)

	var emitted []Span
	emit := func(sp Span) { emitted = append(emitted, sp) }

	assert.False(t, c.HasSpan())
	c.BeginSpan(KindComment, false)
	assert.True(t, c.HasSpan())
	c.Advance(5)
	c.EndSpan(emit)

	assert.Equal(t, []Span{{Range: textbuf.Range{Start: 100, End: 105}, Kind: KindComment}}, emitted)

	// Empty spans are not emitted.
	c.BeginSpan(KindComment, false)
	c.EndSpan(emit)
	assert.Len(t, emitted, 1)

	// Ignored spans are tracked but never emitted.
	c2 := newLineCursor([]byte("hidden"), 0)
	c2.BeginSpan(KindString, true)
	c2.Advance(6)
	c2.EndSpan(emit)
	assert.Len(t, emitted, 1)

	// Dropped spans vanish.
	c3 := newLineCursor([]byte("gone"), 0)
	c3.BeginSpan(KindString, false)
	c3.Advance(4)
	c3.DropSpan()
	assert.False(t, c3.HasSpan())
	c3.EndSpan(emit)
	assert.Len(t, emitted, 1)
}

func TestLineCursorTagName(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		closing bool
	}{
		{"opening tag", "<summary>", "summary", false},
		{"closing tag", "</summary>", "summary", true},
		{"tag with attributes", `<param name="x">`, "param", false},
		{"namespaced tag", "<ns:item>", "ns:item", false},
		{"no opener", "plain text>", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newLineCursor([]byte(tt.text), 0)
			// Place the cursor on the closing '>'.
			c.Advance(len(tt.text) - 1)

			name, closing := c.TagName()
			assert.Equal(t, tt.want, name)
			assert.Equal(t, tt.closing, closing)
		})
	}
}

func TestLineCursorAttributeName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple", `name="`, "name"},
		{"spaces around equals", `term = "`, "term"},
		{"after tag", `<item term="`, "term"},
		{"no equals", `just "`, ""},
		{"bare quote", `"`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newLineCursor([]byte(tt.text), 0)
			// Place the cursor on the opening quote.
			c.Advance(len(tt.text) - 1)
			assert.Equal(t, tt.want, c.AttributeName())
		})
	}
}

func TestLineCursorReadIdentifier(t *testing.T) {
	c := newLineCursor([]byte("region Title"), 0)
	assert.Equal(t, "region", c.ReadIdentifier())

	c.SkipSpaces()
	assert.Equal(t, byte('T'), c.Ch())

	// No letters at the cursor yields the empty string.
	c2 := newLineCursor([]byte("123"), 0)
	assert.Equal(t, "", c2.ReadIdentifier())
}
