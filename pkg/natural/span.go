package natural

import "github.com/yaklabco/gospellscan/pkg/textbuf"

// SpanKind classifies the syntactic origin of a natural-text span. The word
// splitter uses it to decide which skip rules apply (escape sequences are
// plausible in ordinary strings but not verbatim ones, format specifiers in
// interpolated strings, and so on).
type SpanKind uint8

const (
	// KindComment is text from a // or /* */ comment.
	KindComment SpanKind = iota

	// KindDocComment is text from a /// or /** */ doc comment.
	KindDocComment

	// KindString is text from an ordinary "..." literal.
	KindString

	// KindVerbatimString is text from a @"..." / R"..." literal, where
	// backslash is not an escape introducer.
	KindVerbatimString

	// KindInterpolatedString is text from a $"..." literal.
	KindInterpolatedString

	// KindAttributeValue is a spell-checked doc-comment XML attribute value.
	KindAttributeValue

	// KindRegionTitle is the title text of a #region directive.
	KindRegionTitle

	// KindPlainText is prose from a non-code tagger (markdown, plain text).
	KindPlainText
)

// String returns the kind name for diagnostics and reports.
func (k SpanKind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindDocComment:
		return "doc-comment"
	case KindString:
		return "string"
	case KindVerbatimString:
		return "verbatim-string"
	case KindInterpolatedString:
		return "interpolated-string"
	case KindAttributeValue:
		return "attribute-value"
	case KindRegionTitle:
		return "region-title"
	case KindPlainText:
		return "plain-text"
	default:
		return "unknown"
	}
}

// Span is a natural-text region of a specific snapshot. Spans are produced
// transiently per scan call and never persisted; only line states are cached.
type Span struct {
	textbuf.Range

	// Kind is the syntactic origin of the span.
	Kind SpanKind
}

// Text returns the span's text from the given snapshot.
func (sp Span) Text(snap *textbuf.Snapshot) string {
	if sp.Start < 0 || sp.End > len(snap.Content) || sp.Start > sp.End {
		return ""
	}
	return string(snap.Content[sp.Start:sp.End])
}
