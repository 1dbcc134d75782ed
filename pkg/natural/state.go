// Package natural provides the incremental lexical scanner that classifies
// C-style source text into natural-language spans (comments, string literals,
// doc-comment text, XML attribute values) versus code. It defines:
// - LineState: the lexical states a line can start or end in
// - LineCursor: a single-line scan cursor with span marking and lookahead
// - Scanner: the incremental state machine with a per-line state cache
package natural

// LineState identifies the lexical state of the scanner at a line boundary
// or within a line. Only storable states are ever written to the per-line
// cache; transient states must resolve before end of line, and the scanner
// defensively resets any other state to StateDefault.
type LineState uint8

const (
	// StateDefault is ordinary code outside any comment or literal.
	StateDefault LineState = iota

	// StateSingleLineComment is a // comment. Transient: never stored.
	StateSingleLineComment

	// StateComment is a /* */ block comment. Storable.
	StateComment

	// StateDocComment is a /// doc comment. Transient: never stored.
	StateDocComment

	// StateDocCommentBlock is a /** */ doc block comment. Storable.
	StateDocCommentBlock

	// StateDocCommentXML is an XML tag within a doc comment. Storable only
	// when the enclosing doc comment is the block form.
	StateDocCommentXML

	// StateDocCommentXMLString is a quoted attribute value within a
	// doc-comment XML tag. Transient: an unclosed value reverts to the
	// enclosing state with its span ignored.
	StateDocCommentXMLString

	// StateString is an ordinary "..." literal. Transient: unterminated
	// strings do not persist across lines.
	StateString

	// StateInterpolatedString is a $"..." literal. Transient.
	StateInterpolatedString

	// StateVerbatimString is a @"..." / $@"..." / R"..." literal. Storable.
	StateVerbatimString

	// StateCharLiteral is a '...' literal. Transient: always resolves to
	// StateDefault whether or not well formed.
	StateCharLiteral
)

// Storable reports whether the state may legally persist across a line
// boundary and therefore appear in the per-line cache.
func (s LineState) Storable() bool {
	switch s {
	case StateDefault, StateComment, StateDocCommentBlock,
		StateDocCommentXML, StateVerbatimString:
		return true
	default:
		return false
	}
}

// String returns the state name for diagnostics.
func (s LineState) String() string {
	switch s {
	case StateDefault:
		return "Default"
	case StateSingleLineComment:
		return "SingleLineComment"
	case StateComment:
		return "Comment"
	case StateDocComment:
		return "DocComment"
	case StateDocCommentBlock:
		return "DocCommentBlock"
	case StateDocCommentXML:
		return "DocCommentXML"
	case StateDocCommentXMLString:
		return "DocCommentXMLString"
	case StateString:
		return "String"
	case StateInterpolatedString:
		return "InterpolatedString"
	case StateVerbatimString:
		return "VerbatimString"
	case StateCharLiteral:
		return "CharLiteral"
	default:
		return "Unknown"
	}
}
