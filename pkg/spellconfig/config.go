// Package spellconfig defines the configuration snapshot consumed by the
// natural-text scanners and the word splitter. These are pure data structures;
// a configuration value is treated as immutable for the duration of a scan or
// split call, so the same value may be shared across goroutines.
package spellconfig

import "strings"

// CharacterClass restricts which words are considered spell-checkable based
// on the code points they contain.
type CharacterClass string

const (
	// CharClassNone applies no character-class restriction.
	CharClassNone CharacterClass = "none"

	// CharClassNonASCII rejects words containing any code point above 0x7F.
	CharClassNonASCII CharacterClass = "non-ascii"

	// CharClassNonLatin rejects words containing any code point above 0xFF.
	CharClassNonLatin CharacterClass = "non-latin"
)

// Normalize maps unrecognized values to CharClassNone.
// Configuration inconsistencies never produce errors.
func (c CharacterClass) Normalize() CharacterClass {
	switch c {
	case CharClassNone, CharClassNonASCII, CharClassNonLatin:
		return c
	default:
		return CharClassNone
	}
}

// Config is the full configuration snapshot for scanning and word splitting.
type Config struct {
	// Scanner options: which comment/string styles contribute natural text.

	// IgnoreDelimitedComments excludes /* */ block comment content.
	IgnoreDelimitedComments bool `yaml:"ignore_delimited_comments"`

	// IgnoreStandardComments excludes // single-line comment content.
	IgnoreStandardComments bool `yaml:"ignore_standard_comments"`

	// IgnoreQuadSlashComments excludes //// comment content. Quadruple-slash
	// comments conventionally mark commented-out code, so this defaults on
	// and applies regardless of IgnoreStandardComments.
	IgnoreQuadSlashComments bool `yaml:"ignore_quad_slash_comments"`

	// IgnoreDocComments excludes /// and /** */ doc comment content.
	IgnoreDocComments bool `yaml:"ignore_doc_comments"`

	// IgnoreStrings excludes ordinary "..." string literal content.
	IgnoreStrings bool `yaml:"ignore_strings"`

	// IgnoreVerbatimStrings excludes @"..." and R"..." literal content.
	IgnoreVerbatimStrings bool `yaml:"ignore_verbatim_strings"`

	// IgnoreInterpolatedStrings excludes $"..." literal content.
	IgnoreInterpolatedStrings bool `yaml:"ignore_interpolated_strings"`

	// IgnoredXMLElements lists doc-comment XML element names whose inner
	// text is never spell-checked. Matching is same-line only.
	IgnoredXMLElements []string `yaml:"ignored_xml_elements"`

	// SpellCheckedAttributes lists doc-comment XML attribute names whose
	// values are spell-checked. All other attribute values are skipped.
	SpellCheckedAttributes []string `yaml:"spell_checked_attributes"`

	// Word splitter options.

	// IgnoreFormatSpecifiers skips {0:...} and %d style placeholders.
	IgnoreFormatSpecifiers bool `yaml:"ignore_format_specifiers"`

	// IgnoreFilenamesAndEMail keeps periods and at-signs inside tokens so
	// filenames and e-mail addresses are rejected whole rather than split
	// into fragments.
	IgnoreFilenamesAndEMail bool `yaml:"ignore_filenames_and_email"`

	// IgnoreWordsWithDigits rejects words containing any digit.
	IgnoreWordsWithDigits bool `yaml:"ignore_words_with_digits"`

	// IgnoreAllUppercase rejects words composed entirely of uppercase letters.
	IgnoreAllUppercase bool `yaml:"ignore_all_uppercase"`

	// IgnoreMixedCase rejects camelCase/PascalCase words whole instead of
	// splitting them into sub-words.
	IgnoreMixedCase bool `yaml:"ignore_mixed_case"`

	// TreatUnderscoreAsSeparator makes underscore a word break.
	TreatUnderscoreAsSeparator bool `yaml:"treat_underscore_as_separator"`

	// Mnemonic is the access-key marker character, "&" or "_".
	Mnemonic string `yaml:"mnemonic"`

	// IgnoredCharacterClass restricts spell-checkable words by code point.
	IgnoredCharacterClass CharacterClass `yaml:"ignored_character_class"`

	// IgnoredEscapedWords lists words introduced by a backslash that are
	// skipped whole (e.g. Doxygen-style tags such as "brief").
	IgnoredEscapedWords []string `yaml:"ignored_escaped_words"`

	// DeprecatedTerms maps deprecated words to their preferred replacements.
	// A deprecated term is never camel-case split.
	DeprecatedTerms map[string]string `yaml:"deprecated_terms"`

	// CompoundTerms lists multi-part words emitted as single spans rather
	// than camel-case split.
	CompoundTerms []string `yaml:"compound_terms"`

	// DetectConcatenations extends word spans across + and & joined string
	// literals that together spell one word.
	DetectConcatenations bool `yaml:"detect_concatenations"`
}

// NewConfig returns a Config with the defaults matching common expectations
// for C-style source: commented-out code, placeholders, filenames, digits,
// and all-caps identifiers are excluded; prose in comments and strings is
// checked.
func NewConfig() *Config {
	return &Config{
		IgnoreQuadSlashComments: true,
		IgnoredXMLElements:      []string{"c", "code", "script", "style"},
		SpellCheckedAttributes: []string{
			"caption", "content", "header", "term", "text", "title", "tooltip",
		},
		IgnoreFormatSpecifiers:  true,
		IgnoreFilenamesAndEMail: true,
		IgnoreWordsWithDigits:   true,
		IgnoreAllUppercase:      true,
		Mnemonic:                "&",
		IgnoredCharacterClass:   CharClassNone,
	}
}

// MnemonicRune returns the configured mnemonic as a rune, defaulting to '&'.
func (c *Config) MnemonicRune() rune {
	if c.Mnemonic == "_" {
		return '_'
	}
	return '&'
}

// IsIgnoredXMLElement reports whether the element name hides its inner text.
// Matching is case-insensitive and ignores any namespace prefix.
func (c *Config) IsIgnoredXMLElement(name string) bool {
	return containsFold(c.IgnoredXMLElements, trimNamespace(name))
}

// IsSpellCheckedAttribute reports whether the attribute's value is
// spell-checked. Matching is case-insensitive.
func (c *Config) IsSpellCheckedAttribute(name string) bool {
	return containsFold(c.SpellCheckedAttributes, trimNamespace(name))
}

// IsIgnoredEscapedWord reports whether a backslash-introduced word is
// skipped whole. Entries may be listed with or without the leading backslash.
func (c *Config) IsIgnoredEscapedWord(word string) bool {
	for _, entry := range c.IgnoredEscapedWords {
		if strings.EqualFold(strings.TrimPrefix(entry, `\`), word) {
			return true
		}
	}
	return false
}

// IsDeprecatedTerm reports whether the word is a configured deprecated term.
// Matching is case-insensitive.
func (c *Config) IsDeprecatedTerm(word string) bool {
	_, ok := c.DeprecatedReplacement(word)
	return ok
}

// DeprecatedReplacement returns the preferred replacement for a deprecated
// term. Matching against the configured terms is case-insensitive.
func (c *Config) DeprecatedReplacement(word string) (string, bool) {
	for term, preferred := range c.DeprecatedTerms {
		if strings.EqualFold(term, word) {
			return preferred, true
		}
	}
	return "", false
}

// IsCompoundTerm reports whether the word is a configured compound term.
func (c *Config) IsCompoundTerm(word string) bool {
	return containsFold(c.CompoundTerms, word)
}

func containsFold(entries []string, value string) bool {
	for _, entry := range entries {
		if strings.EqualFold(entry, value) {
			return true
		}
	}
	return false
}

// trimNamespace strips an XML namespace prefix ("ns:name" -> "name").
func trimNamespace(name string) string {
	if idx := strings.LastIndexByte(name, ':'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
