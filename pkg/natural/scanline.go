package natural

import (
	"strings"

	"github.com/yaklabco/gospellscan/pkg/spellconfig"
)

// lineScan drives the state machine over a single line. Its per-line flags
// (pending include directive, ignored XML element) reset naturally at end of
// line, which is what makes ignored-element and attribute handling same-line
// only.
type lineScan struct {
	cfg     *spellconfig.Config
	dialect Dialect
	cur     *LineCursor
	emit    func(Span)
	state   LineState

	// blockDoc is true while the enclosing doc comment is the /** */ form,
	// in which XML tags may persist across lines.
	blockDoc bool

	// includePending suppresses the next string literal on the line after a
	// preprocessor include directive, so file paths are not spell-checked.
	includePending bool

	// ignoredElement holds the name of an ignored XML element whose text is
	// being suppressed until its same-line closer.
	ignoredElement string
}

// run scans the line to completion and returns the end-of-line state.
func (ls *lineScan) run() LineState {
	ls.enterLine()

	for !ls.cur.EOL() {
		switch ls.state {
		case StateDefault:
			ls.scanDefault()
		case StateString, StateInterpolatedString:
			ls.scanStringTail()
		case StateVerbatimString:
			ls.scanVerbatimTail()
		case StateComment:
			ls.scanBlockCommentTail()
		case StateDocComment, StateDocCommentBlock:
			ls.scanDocText()
		case StateDocCommentXML:
			ls.scanDocXMLTag()
		case StateDocCommentXMLString:
			ls.scanAttributeValue("")
		default:
			// Unexpected state: reset rather than loop.
			ls.cur.DropSpan()
			ls.state = StateDefault
		}
	}

	return ls.endOfLine()
}

// enterLine opens the carried-over natural-text run when the line starts
// inside a multi-line construct.
func (ls *lineScan) enterLine() {
	switch ls.state {
	case StateComment:
		ls.cur.BeginSpan(KindComment, ls.cfg.IgnoreDelimitedComments)
	case StateDocCommentBlock:
		ls.blockDoc = true
		ls.cur.BeginSpan(KindDocComment, ls.docTextIgnored())
	case StateDocCommentXML:
		ls.blockDoc = true
	case StateVerbatimString:
		ls.cur.BeginSpan(KindVerbatimString, ls.cfg.IgnoreVerbatimStrings)
	}
}

// endOfLine closes any open run and resolves transient states. Malformed or
// unterminated constructs never propagate: anything that cannot legally
// cross the line boundary becomes StateDefault (or the enclosing doc state
// for an unclosed attribute value).
func (ls *lineScan) endOfLine() LineState {
	switch ls.state {
	case StateDocCommentXMLString:
		// Unclosed attribute value: the span is ignored, conservative.
		ls.cur.DropSpan()
		if ls.blockDoc {
			return StateDocCommentXML
		}
		return StateDefault
	case StateDocCommentXML:
		ls.cur.EndSpan(ls.emit)
		if ls.blockDoc {
			return StateDocCommentXML
		}
		return StateDefault
	}

	ls.cur.EndSpan(ls.emit)

	if ls.state.Storable() {
		return ls.state
	}
	return StateDefault
}

// scanDefault dispatches on lookahead at the current position in code.
func (ls *lineScan) scanDefault() {
	switch ls.cur.Ch() {
	case '/':
		switch ls.cur.Peek(1) {
		case '/':
			ls.scanLineComment()
		case '*':
			if ls.cur.Peek(2) == '*' && ls.cur.Peek(3) != '*' {
				ls.cur.Advance(3)
				ls.state = StateDocCommentBlock
				ls.blockDoc = true
				ls.cur.BeginSpan(KindDocComment, ls.docTextIgnored())
			} else {
				ls.cur.Advance(2)
				ls.state = StateComment
				ls.cur.BeginSpan(KindComment, ls.cfg.IgnoreDelimitedComments)
			}
		default:
			ls.cur.Advance(1)
		}
	case '"':
		ls.cur.Advance(1)
		ls.beginString(StateString, KindString, ls.cfg.IgnoreStrings)
	case '$':
		switch {
		case ls.cur.Peek(1) == '"':
			ls.cur.Advance(2)
			ls.beginString(StateInterpolatedString, KindInterpolatedString,
				ls.cfg.IgnoreInterpolatedStrings)
		case ls.cur.Peek(1) == '@' && ls.cur.Peek(2) == '"':
			ls.cur.Advance(3)
			ls.beginString(StateVerbatimString, KindVerbatimString,
				ls.cfg.IgnoreVerbatimStrings)
		default:
			ls.cur.Advance(1)
		}
	case '@':
		switch {
		case ls.cur.Peek(1) == '"':
			ls.cur.Advance(2)
			ls.beginString(StateVerbatimString, KindVerbatimString,
				ls.cfg.IgnoreVerbatimStrings)
		case ls.cur.Peek(1) == '$' && ls.cur.Peek(2) == '"':
			ls.cur.Advance(3)
			ls.beginString(StateVerbatimString, KindVerbatimString,
				ls.cfg.IgnoreVerbatimStrings)
		default:
			ls.cur.Advance(1)
		}
	case 'R':
		if ls.dialect == DialectC && ls.cur.Peek(1) == '"' {
			ls.cur.Advance(2)
			ls.beginString(StateVerbatimString, KindVerbatimString,
				ls.cfg.IgnoreVerbatimStrings)
		} else {
			ls.cur.Advance(1)
		}
	case '\'':
		ls.scanCharLiteral()
	case '#':
		ls.scanPreprocessor()
	default:
		ls.cur.Advance(1)
	}
}

// beginString opens a string-literal run. A string following an include
// directive is a file path and is suppressed regardless of kind.
func (ls *lineScan) beginString(state LineState, kind SpanKind, ignored bool) {
	if ls.includePending {
		ignored = true
		ls.includePending = false
	}
	ls.state = state
	ls.cur.BeginSpan(kind, ignored)
}

// scanLineComment handles //, ///, and //// once the cursor sits on the
// first slash of a // pair.
func (ls *lineScan) scanLineComment() {
	slashes := 0
	for ls.cur.Peek(slashes) == '/' {
		slashes++
	}

	switch {
	case slashes >= 4:
		// Quadruple slash marks commented-out code.
		ls.cur.Advance(slashes)
		ls.restOfLine(KindComment,
			ls.cfg.IgnoreQuadSlashComments || ls.cfg.IgnoreStandardComments)
	case slashes == 3:
		ls.cur.Advance(3)
		ls.cur.SkipSpaces()
		ls.state = StateDocComment
		ls.blockDoc = false
		ls.cur.BeginSpan(KindDocComment, ls.docTextIgnored())
	default:
		ls.cur.Advance(2)
		ls.restOfLine(KindComment, ls.cfg.IgnoreStandardComments)
	}
}

// restOfLine marks everything through end of line as one natural-text run.
func (ls *lineScan) restOfLine(kind SpanKind, ignored bool) {
	ls.cur.SkipSpaces()
	ls.cur.BeginSpan(kind, ignored)
	ls.cur.Advance(len(ls.cur.text))
	ls.cur.EndSpan(ls.emit)
}

// scanCharLiteral consumes a character literal: one escaped or plain
// character, then the closing quote. It always resolves to StateDefault.
func (ls *lineScan) scanCharLiteral() {
	ls.cur.Advance(1)
	if ls.cur.Ch() == '\\' {
		ls.cur.Advance(2)
	} else {
		ls.cur.Advance(1)
	}
	if ls.cur.Ch() == '\'' {
		ls.cur.Advance(1)
	}
}

// scanPreprocessor handles #region (title is prose) and include-style
// directives (the following string is a path, not prose).
func (ls *lineScan) scanPreprocessor() {
	ls.cur.Advance(1)
	ls.cur.SkipSpaces()
	word := strings.ToLower(ls.cur.ReadIdentifier())

	switch word {
	case "region":
		ls.restOfLine(KindRegionTitle, false)
	case "include", "import":
		ls.includePending = true
	}
}

// scanStringTail consumes an ordinary or interpolated string body. Backslash
// escapes the next character; an unterminated string does not persist.
func (ls *lineScan) scanStringTail() {
	for !ls.cur.EOL() {
		switch ls.cur.Ch() {
		case '\\':
			ls.cur.Advance(2)
		case '"':
			ls.cur.EndSpan(ls.emit)
			ls.cur.Advance(1)
			ls.state = StateDefault
			return
		default:
			ls.cur.Advance(1)
		}
	}
}

// scanVerbatimTail consumes a verbatim string body. A doubled quote is an
// escaped quote; a single quote closes the string.
func (ls *lineScan) scanVerbatimTail() {
	for !ls.cur.EOL() {
		if ls.cur.Ch() != '"' {
			ls.cur.Advance(1)
			continue
		}
		if ls.cur.Peek(1) == '"' {
			ls.cur.Advance(2)
			continue
		}
		ls.cur.EndSpan(ls.emit)
		ls.cur.Advance(1)
		ls.state = StateDefault
		return
	}
}

// scanBlockCommentTail consumes a /* */ comment body until its closer.
func (ls *lineScan) scanBlockCommentTail() {
	for !ls.cur.EOL() {
		if ls.cur.Ch() == '*' && ls.cur.Peek(1) == '/' {
			ls.cur.EndSpan(ls.emit)
			ls.cur.Advance(2)
			ls.state = StateDefault
			return
		}
		ls.cur.Advance(1)
	}
}

// docTextIgnored reports whether doc-comment text is currently suppressed,
// either globally or inside an ignored XML element.
func (ls *lineScan) docTextIgnored() bool {
	return ls.cfg.IgnoreDocComments || ls.ignoredElement != ""
}

// scanDocText consumes doc-comment prose, switching into the XML sub-scan
// at '<' and, for the block form, watching for the closing */.
func (ls *lineScan) scanDocText() {
	for !ls.cur.EOL() {
		ch := ls.cur.Ch()

		if ls.blockDoc && ch == '*' && ls.cur.Peek(1) == '/' {
			ls.cur.EndSpan(ls.emit)
			ls.cur.Advance(2)
			ls.state = StateDefault
			return
		}

		if ch == '<' {
			ls.cur.EndSpan(ls.emit)
			ls.cur.Advance(1)
			ls.state = StateDocCommentXML
			return
		}

		if !ls.cur.HasSpan() {
			ls.cur.BeginSpan(KindDocComment, ls.docTextIgnored())
		}
		ls.cur.Advance(1)
	}
}

// scanDocXMLTag consumes the inside of a <...> tag. The element name is
// recovered by backward scan at the closing '>', which is also where
// ignored-element suppression is toggled. Detection is same-line only.
func (ls *lineScan) scanDocXMLTag() {
	for !ls.cur.EOL() {
		switch ls.cur.Ch() {
		case '>':
			name, closing := ls.cur.TagName()
			selfClosing := ls.cur.pos > 0 && ls.cur.text[ls.cur.pos-1] == '/'
			ls.applyTag(name, closing, selfClosing)
			ls.cur.Advance(1)
			ls.leaveTag()
			return
		case '"':
			attr := ls.cur.AttributeName()
			ls.cur.Advance(1)
			ls.state = StateDocCommentXMLString
			ls.scanAttributeValue(attr)
			if ls.cur.EOL() {
				return
			}
		case '*':
			// A */ inside a malformed tag still closes a block comment.
			if ls.blockDoc && ls.cur.Peek(1) == '/' {
				ls.cur.Advance(2)
				ls.state = StateDefault
				return
			}
			ls.cur.Advance(1)
		default:
			ls.cur.Advance(1)
		}
	}
}

// applyTag updates ignored-element suppression from a completed tag.
func (ls *lineScan) applyTag(name string, closing, selfClosing bool) {
	if name == "" {
		return
	}
	if closing {
		if strings.EqualFold(trimNamespace(name), trimNamespace(ls.ignoredElement)) {
			ls.ignoredElement = ""
		}
		return
	}
	if !selfClosing && ls.cfg.IsIgnoredXMLElement(name) {
		ls.ignoredElement = name
	}
}

// leaveTag returns from the XML sub-scan to the enclosing doc-comment text.
func (ls *lineScan) leaveTag() {
	if ls.blockDoc {
		ls.state = StateDocCommentBlock
	} else {
		ls.state = StateDocComment
	}
	if !ls.cur.EOL() {
		ls.cur.BeginSpan(KindDocComment, ls.docTextIgnored())
	}
}

// scanAttributeValue consumes a quoted attribute value. The value is emitted
// as natural text only when the attribute name is in the spell-checked set;
// a value left unclosed at end of line is dropped (conservative) and the
// scanner reverts to the enclosing tag state.
func (ls *lineScan) scanAttributeValue(attr string) {
	ignored := ls.docTextIgnored() ||
		attr == "" || !ls.cfg.IsSpellCheckedAttribute(attr)
	ls.cur.BeginSpan(KindAttributeValue, ignored)

	for !ls.cur.EOL() {
		if ls.cur.Ch() == '"' {
			ls.cur.EndSpan(ls.emit)
			ls.cur.Advance(1)
			ls.state = StateDocCommentXML
			return
		}
		ls.cur.Advance(1)
	}
	// EOL inside the value: endOfLine drops the span.
	ls.state = StateDocCommentXMLString
}

func trimNamespace(name string) string {
	if idx := strings.LastIndexByte(name, ':'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
