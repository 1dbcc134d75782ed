package natural

import "github.com/yaklabco/gospellscan/pkg/textbuf"

// LineCursor is a scan cursor over one line's text. It exposes character
// lookahead, span marking for natural-text runs, and backward scans that
// recover the enclosing XML tag or attribute name. A cursor never outlives
// the scan of its line.
type LineCursor struct {
	text []byte
	base int // absolute offset of the line start within the snapshot

	pos int

	spanStart   int
	spanKind    SpanKind
	spanIgnored bool
}

func newLineCursor(text []byte, base int) *LineCursor {
	return &LineCursor{text: text, base: base, spanStart: -1}
}

// EOL reports whether the cursor has consumed the whole line.
func (c *LineCursor) EOL() bool {
	return c.pos >= len(c.text)
}

// Ch returns the byte at the cursor, or 0 at end of line.
func (c *LineCursor) Ch() byte {
	if c.pos >= len(c.text) {
		return 0
	}
	return c.text[c.pos]
}

// Peek returns the byte n positions ahead of the cursor, or 0 past end of
// line. Peek(0) is equivalent to Ch.
func (c *LineCursor) Peek(n int) byte {
	if c.pos+n >= len(c.text) {
		return 0
	}
	return c.text[c.pos+n]
}

// Advance moves the cursor forward n bytes, clamped to end of line.
func (c *LineCursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.text) {
		c.pos = len(c.text)
	}
}

// Pos returns the cursor's absolute offset within the snapshot.
func (c *LineCursor) Pos() int {
	return c.base + c.pos
}

// BeginSpan marks the current position as the start of a natural-text run.
// An ignored span is tracked but never emitted; this keeps suppressed
// content (ignored comment styles, non-spell-checked attribute values)
// flowing through the same code path as emitted content.
func (c *LineCursor) BeginSpan(kind SpanKind, ignored bool) {
	c.spanStart = c.pos
	c.spanKind = kind
	c.spanIgnored = ignored
}

// EndSpan closes the open natural-text run at the current position and
// emits it when it is non-empty and not ignored. A nil emit discards the
// span (state-only scans).
func (c *LineCursor) EndSpan(emit func(Span)) {
	if c.spanStart < 0 {
		return
	}
	start, end := c.spanStart, c.pos
	c.spanStart = -1
	if emit == nil || c.spanIgnored || end <= start {
		return
	}
	emit(Span{
		Range: textbuf.Range{Start: c.base + start, End: c.base + end},
		Kind:  c.spanKind,
	})
}

// DropSpan abandons the open natural-text run without emitting it.
func (c *LineCursor) DropSpan() {
	c.spanStart = -1
}

// HasSpan reports whether a natural-text run is currently open.
func (c *LineCursor) HasSpan() bool {
	return c.spanStart >= 0
}

// TagName scans backward from the cursor to the nearest '<' on the line and
// returns the element name that follows it, plus whether the tag is a
// closing tag. It returns ("", false) when no tag opener precedes the cursor.
func (c *LineCursor) TagName() (string, bool) {
	open := -1
	for i := c.pos - 1; i >= 0; i-- {
		if c.text[i] == '<' {
			open = i
			break
		}
	}
	if open < 0 {
		return "", false
	}

	i := open + 1
	closing := false
	if i < len(c.text) && c.text[i] == '/' {
		closing = true
		i++
	}

	start := i
	for i < len(c.text) && isXMLNameByte(c.text[i]) {
		i++
	}
	return string(c.text[start:i]), closing
}

// AttributeName scans backward from the cursor, which must sit on the
// opening quote of an attribute value, and recovers the attribute name:
// optional whitespace, '=', then the name itself back to whitespace or '<'.
// Returns "" when the preceding text does not look like name=.
func (c *LineCursor) AttributeName() string {
	i := c.pos - 1

	for i >= 0 && isSpaceByte(c.text[i]) {
		i--
	}
	if i < 0 || c.text[i] != '=' {
		return ""
	}
	i--
	for i >= 0 && isSpaceByte(c.text[i]) {
		i--
	}

	end := i + 1
	for i >= 0 && isXMLNameByte(c.text[i]) {
		i--
	}
	if i+1 == end {
		return ""
	}
	return string(c.text[i+1 : end])
}

// ReadIdentifier consumes and returns the run of letters at the cursor.
func (c *LineCursor) ReadIdentifier() string {
	start := c.pos
	for !c.EOL() && isLetterByte(c.Ch()) {
		c.pos++
	}
	return string(c.text[start:c.pos])
}

// SkipSpaces consumes any run of spaces and tabs at the cursor.
func (c *LineCursor) SkipSpaces() {
	for !c.EOL() && isSpaceByte(c.Ch()) {
		c.pos++
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}

func isLetterByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isXMLNameByte(b byte) bool {
	return isLetterByte(b) || (b >= '0' && b <= '9') ||
		b == ':' || b == '-' || b == '_' || b == '.'
}
