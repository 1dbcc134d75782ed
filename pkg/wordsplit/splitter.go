// Package wordsplit turns natural-language text into spell-checkable word
// spans. Skip rules for escape sequences, XML/HTML entities, and format
// specifiers are applied before word-boundary detection so non-word
// constructs never fragment into spurious short "words". A Splitter is a
// pure function of its inputs plus an immutable configuration snapshot and
// is safe for concurrent use.
package wordsplit

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gospellscan/pkg/spellconfig"
)

// Origin classifies the syntactic source of the text being split. It decides
// which skip rules are plausible: backslash escapes apply to ordinary string
// literals and, in C-style code, to comments (Doxygen-style tags); never to
// verbatim strings or plain prose.
type Origin uint8

const (
	OriginComment Origin = iota
	OriginDocComment
	OriginString
	OriginVerbatimString
	OriginInterpolatedString
	OriginAttributeValue
	OriginRegionTitle
	OriginPlainText
)

func (o Origin) escapesPlausible(cStyle bool) bool {
	switch o {
	case OriginString, OriginInterpolatedString:
		return true
	case OriginComment, OriginDocComment, OriginAttributeValue:
		return cStyle
	default:
		return false
	}
}

// Span is a word region within the input string, in byte offsets.
type Span struct {
	Start int
	End   int
}

// Text returns the span's text from the input string.
func (s Span) Text(text string) string {
	if s.Start < 0 || s.End > len(text) || s.Start > s.End {
		return ""
	}
	return text[s.Start:s.End]
}

// Splitter produces word spans from natural-language text.
type Splitter struct {
	cfg    *spellconfig.Config
	cStyle bool
}

// New creates a splitter over the given configuration snapshot. cStyle
// indicates the containing file is C-style source, which makes backslash
// escapes plausible inside comments.
func New(cfg *spellconfig.Config, cStyle bool) *Splitter {
	return &Splitter{cfg: cfg, cStyle: cStyle}
}

func (s *Splitter) mnemonic() rune {
	return s.cfg.MnemonicRune()
}

// Words yields the word spans of text. The sequence is lazy, finite, and
// re-derived on each call. Words shorter than two runes are discarded,
// except sub-words produced by camel-case splitting.
func (s *Splitter) Words(text string, origin Origin) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		escapes := origin.escapesPlausible(s.cStyle)

		i := 0
		for i < len(text) {
			r, width := utf8.DecodeRuneInString(text[i:])

			if n := s.skipLen(text[i:], r, escapes); n > 0 {
				i += n
				continue
			}

			if s.isWordBreak(r, true) {
				i += width
				continue
			}

			start := i
			end := s.wordEnd(text, i)
			next := end

			// An entity-like tail such as "Caption&gt;" is cut back to
			// before the mnemonic so the entity fragment is not part of
			// the word; the entity itself is skipped on the next pass.
			if s.mnemonic() == '&' {
				if amp := strings.IndexByte(text[start:end], '&'); amp >= 0 {
					if entityLen(text[start+amp:]) > 0 {
						end = start + amp
						next = end
					}
				}
			}

			if s.cfg.DetectConcatenations {
				end, next = s.extendAcrossConcatenation(text, end)
			}

			if !s.emitWord(text, start, end, yield) {
				return
			}
			i = next
		}
	}
}

// skipLen returns the length of a non-word construct at the start of rest,
// or 0 when none applies. Skip rules run in priority order: escapes,
// entities, then format specifiers.
func (s *Splitter) skipLen(rest string, r rune, escapes bool) int {
	if r == '\\' && escapes {
		if n := s.escapedWordLen(rest); n > 0 {
			return n
		}
		if n := escapeLen(rest); n > 0 {
			return n
		}
		return 1
	}

	if r == '&' {
		if n := entityLen(rest); n > 0 {
			return n
		}
	}

	if s.cfg.IgnoreFormatSpecifiers {
		switch r {
		case '{':
			if strings.HasPrefix(rest, "{{") {
				return 2
			}
			if n := dotNetFormatLen(rest); n > 0 {
				return n
			}
		case '}':
			if strings.HasPrefix(rest, "}}") {
				return 2
			}
		case '%':
			if n := printfLen(rest); n > 0 {
				return n
			}
		}
	}

	return 0
}

// escapedWordLen handles a backslash followed by a word from the escaped
// words ignore list (e.g. Doxygen tags): the whole word is skipped, not
// just the escape token.
func (s *Splitter) escapedWordLen(rest string) int {
	end := 1
	for end < len(rest) && isASCIILetter(rest[end]) {
		end++
	}
	if end == 1 {
		return 0
	}
	if s.cfg.IsIgnoredEscapedWord(rest[1:end]) {
		return end
	}
	return 0
}

// wordEnd scans forward from start to the first word break, with the
// mnemonic retained inside the word.
func (s *Splitter) wordEnd(text string, start int) int {
	end := start
	for end < len(text) {
		r, width := utf8.DecodeRuneInString(text[end:])
		if s.isWordBreak(r, true) {
			break
		}
		end += width
	}
	return end
}

// isWordBreak reports whether r splits words. A rune is a break unless it is
// a letter, a digit, or retained punctuation: apostrophes are never breaks;
// '.' and '@' are breaks only when filename/e-mail ignoring is off (when on,
// the whole filename or address stays one token and is rejected later by
// IsProbablyARealWord); '_' is a break only when configured as a separator;
// the mnemonic is a break unless the caller retains it.
func (s *Splitter) isWordBreak(r rune, retainMnemonic bool) bool {
	if r == s.mnemonic() {
		return !retainMnemonic
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	switch r {
	case '\'', '’':
		return false
	case '.', '@':
		return !s.cfg.IgnoreFilenamesAndEMail
	case '_':
		return s.cfg.TreatUnderscoreAsSeparator
	}
	return true
}

// emitWord trims the word's edges, applies the minimum length rule, and
// yields it (split into camel-case sub-words when configured).
func (s *Splitter) emitWord(text string, start, end int, yield func(Span) bool) bool {
	start, end = s.trimEdges(text, start, end)
	if end <= start {
		return true
	}

	word := text[start:end]
	if utf8.RuneCountInString(word) < 2 {
		return true
	}

	if s.shouldCamelSplit(word) {
		for _, part := range camelBoundaries(word) {
			if !yield(Span{Start: start + part[0], End: start + part[1]}) {
				return false
			}
		}
		return true
	}

	return yield(Span{Start: start, End: end})
}

// trimEdges strips leading and trailing apostrophes (plain and U+2019),
// periods, at-signs, and the mnemonic from the word edges.
func (s *Splitter) trimEdges(text string, start, end int) (int, int) {
	isEdge := func(r rune) bool {
		return r == '\'' || r == '’' || r == '.' || r == '@' || r == s.mnemonic()
	}

	for start < end {
		r, width := utf8.DecodeRuneInString(text[start:end])
		if !isEdge(r) {
			break
		}
		start += width
	}
	for end > start {
		r, width := utf8.DecodeLastRuneInString(text[start:end])
		if !isEdge(r) {
			break
		}
		end -= width
	}
	return start, end
}

// extendAcrossConcatenation extends a word ending at a closing quote across
// string-concatenation syntax when the next literal immediately continues
// the word, e.g. "con" + "catenated". The returned span end includes the
// bridge punctuation; the caller strips it before checking spelling.
func (s *Splitter) extendAcrossConcatenation(text string, end int) (int, int) {
	next := end
	for end < len(text) && text[end] == '"' {
		cont := concatContinuation(text, end)
		if cont == 0 {
			break
		}
		wordEnd := s.wordEnd(text, cont)
		if wordEnd == cont {
			break
		}
		end = wordEnd
		next = wordEnd
	}
	return end, next
}

// concatContinuation returns the index just past a concatenation bridge
// starting at the closing quote at idx (`" + "`, `" & "`, `" + @"`), or 0
// when the quote does not begin a bridge.
func concatContinuation(text string, idx int) int {
	i := idx + 1
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i >= len(text) || (text[i] != '+' && text[i] != '&') {
		return 0
	}
	i++
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	for i < len(text) && (text[i] == '@' || text[i] == '$') {
		i++
	}
	if i < len(text) && text[i] == '"' {
		return i + 1
	}
	return 0
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
