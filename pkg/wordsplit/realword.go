package wordsplit

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gospellscan/pkg/spellconfig"
)

// IsProbablyARealWord reports whether a word span is worth handing to the
// spelling engine. It filters tokens that look like filenames, e-mail
// addresses, identifiers, acronyms, and words outside the configured
// character class. The filter is deliberately conservative: rejecting a
// token means it is silently not spell-checked.
func (s *Splitter) IsProbablyARealWord(word string) bool {
	if word == "" {
		return false
	}

	if s.cfg.IgnoreFilenamesAndEMail && strings.ContainsAny(word, ".@") {
		return false
	}

	if strings.ContainsRune(word, '_') && s.mnemonic() != '_' {
		return false
	}

	letters := 0
	uppers := 0
	for _, r := range word {
		if s.cfg.IgnoreWordsWithDigits && unicode.IsDigit(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
		if !allowedByCharacterClass(r, s.cfg.IgnoredCharacterClass) {
			return false
		}
	}

	// Composed entirely of non-letter characters.
	if letters == 0 {
		return false
	}

	if s.cfg.IgnoreAllUppercase && uppers == letters {
		return false
	}

	if isMixedCase(word) && !s.cfg.IsDeprecatedTerm(word) && !s.cfg.IsCompoundTerm(word) {
		return false
	}

	return true
}

// isMixedCase reports an internal case transition from lowercase to
// uppercase, which marks camelCase identifiers. Title case ("Visit") and
// acronym-plus-s forms ("IDs") are not mixed.
func isMixedCase(word string) bool {
	var prev rune
	first := true
	for _, r := range word {
		if !first && unicode.IsUpper(r) && unicode.IsLower(prev) {
			return true
		}
		prev = r
		first = false
	}
	return false
}

func allowedByCharacterClass(r rune, class spellconfig.CharacterClass) bool {
	switch class.Normalize() {
	case spellconfig.CharClassNonASCII:
		return r <= 0x7F
	case spellconfig.CharClassNonLatin:
		return r <= 0xFF
	default:
		return true
	}
}
