package wordsplit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// shouldCamelSplit reports whether a candidate word is a camelCase or
// PascalCase compound that must be split into sub-words. Compounds that are
// configured deprecated or compound terms, or that contain an underscore,
// period, or at-sign, are emitted whole.
func (s *Splitter) shouldCamelSplit(word string) bool {
	if s.cfg.IgnoreMixedCase {
		return false
	}
	if strings.ContainsAny(word, "_.@") {
		return false
	}
	if s.cfg.IsDeprecatedTerm(word) || s.cfg.IsCompoundTerm(word) {
		return false
	}

	first, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsLetter(first) {
		return false
	}

	return hasInternalUpper(word)
}

// hasInternalUpper reports whether the word contains an uppercase letter
// past the first rune.
func hasInternalUpper(word string) bool {
	skippedFirst := false
	for _, r := range word {
		if !skippedFirst {
			skippedFirst = true
			continue
		}
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// camelBoundaries returns the [start, end) byte ranges of the sub-words of
// a camel-case compound. A run of consecutive uppercase letters is one
// acronym unit; a final uppercase letter immediately followed by a trailing
// lowercase 's' folds into the preceding unit, so "IDs" stays one unit
// rather than producing a one-letter fragment.
func camelBoundaries(word string) [][2]int {
	type runeAt struct {
		r   rune
		off int
	}

	runes := make([]runeAt, 0, len(word))
	for off, r := range word {
		runes = append(runes, runeAt{r: r, off: off})
	}

	var parts [][2]int
	start := 0

	for k := 1; k < len(runes); k++ {
		if !unicode.IsUpper(runes[k].r) {
			continue
		}

		prev := runes[k-1].r
		if unicode.IsLower(prev) || unicode.IsDigit(prev) {
			parts = append(parts, [2]int{start, runes[k].off})
			start = runes[k].off
			continue
		}

		// An uppercase letter ending an acronym run starts a new unit when
		// lowercase follows, except the trailing-s fold.
		if unicode.IsUpper(prev) && k+1 < len(runes) && unicode.IsLower(runes[k+1].r) {
			if runes[k+1].r == 's' && k+2 == len(runes) {
				continue
			}
			parts = append(parts, [2]int{start, runes[k].off})
			start = runes[k].off
		}
	}

	parts = append(parts, [2]int{start, len(word)})
	return parts
}
