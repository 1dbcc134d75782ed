package spellconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.False(t, cfg.IgnoreStandardComments)
	assert.False(t, cfg.IgnoreDocComments)
	assert.False(t, cfg.IgnoreStrings)
	assert.True(t, cfg.IgnoreQuadSlashComments)
	assert.True(t, cfg.IgnoreFormatSpecifiers)
	assert.True(t, cfg.IgnoreFilenamesAndEMail)
	assert.True(t, cfg.IgnoreWordsWithDigits)
	assert.True(t, cfg.IgnoreAllUppercase)
	assert.Equal(t, "&", cfg.Mnemonic)
	assert.Equal(t, CharClassNone, cfg.IgnoredCharacterClass)
	assert.Contains(t, cfg.IgnoredXMLElements, "code")
	assert.Contains(t, cfg.SpellCheckedAttributes, "term")
}

func TestCharacterClassNormalize(t *testing.T) {
	assert.Equal(t, CharClassNone, CharClassNone.Normalize())
	assert.Equal(t, CharClassNonASCII, CharClassNonASCII.Normalize())
	assert.Equal(t, CharClassNonLatin, CharClassNonLatin.Normalize())
	assert.Equal(t, CharClassNone, CharacterClass("bogus").Normalize())
	assert.Equal(t, CharClassNone, CharacterClass("").Normalize())
}

func TestMnemonicRune(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, '&', cfg.MnemonicRune())

	cfg.Mnemonic = "_"
	assert.Equal(t, '_', cfg.MnemonicRune())

	cfg.Mnemonic = "bogus"
	assert.Equal(t, '&', cfg.MnemonicRune())
}

func TestIsIgnoredXMLElement(t *testing.T) {
	cfg := NewConfig()

	assert.True(t, cfg.IsIgnoredXMLElement("code"))
	assert.True(t, cfg.IsIgnoredXMLElement("CODE"))
	assert.True(t, cfg.IsIgnoredXMLElement("ns:code"))
	assert.False(t, cfg.IsIgnoredXMLElement("summary"))
	assert.False(t, cfg.IsIgnoredXMLElement(""))
}

func TestIsSpellCheckedAttribute(t *testing.T) {
	cfg := NewConfig()

	assert.True(t, cfg.IsSpellCheckedAttribute("term"))
	assert.True(t, cfg.IsSpellCheckedAttribute("Caption"))
	assert.False(t, cfg.IsSpellCheckedAttribute("cref"))
	assert.False(t, cfg.IsSpellCheckedAttribute("name"))
}

func TestIsIgnoredEscapedWord(t *testing.T) {
	cfg := NewConfig()
	cfg.IgnoredEscapedWords = []string{"brief", `\param`}

	assert.True(t, cfg.IsIgnoredEscapedWord("brief"))
	assert.True(t, cfg.IsIgnoredEscapedWord("BRIEF"))
	assert.True(t, cfg.IsIgnoredEscapedWord("param"))
	assert.False(t, cfg.IsIgnoredEscapedWord("returns"))
}

func TestIsDeprecatedTerm(t *testing.T) {
	cfg := NewConfig()
	assert.False(t, cfg.IsDeprecatedTerm("whitelist"))

	cfg.DeprecatedTerms = map[string]string{"whitelist": "allow list"}
	assert.True(t, cfg.IsDeprecatedTerm("whitelist"))
	assert.True(t, cfg.IsDeprecatedTerm("WhiteList"))
	assert.False(t, cfg.IsDeprecatedTerm("blocklist"))

	// Configured terms keep their original casing; matching still folds.
	cfg.DeprecatedTerms = map[string]string{"subKey": "subkey"}
	assert.True(t, cfg.IsDeprecatedTerm("subKey"))
	assert.True(t, cfg.IsDeprecatedTerm("SUBKEY"))
}

func TestDeprecatedReplacement(t *testing.T) {
	cfg := NewConfig()

	_, ok := cfg.DeprecatedReplacement("subKey")
	assert.False(t, ok)

	cfg.DeprecatedTerms = map[string]string{"subKey": "subkey"}

	preferred, ok := cfg.DeprecatedReplacement("subKey")
	assert.True(t, ok)
	assert.Equal(t, "subkey", preferred)

	preferred, ok = cfg.DeprecatedReplacement("SubKey")
	assert.True(t, ok)
	assert.Equal(t, "subkey", preferred)
}

func TestIsCompoundTerm(t *testing.T) {
	cfg := NewConfig()
	cfg.CompoundTerms = []string{"CodeSpan"}

	assert.True(t, cfg.IsCompoundTerm("CodeSpan"))
	assert.True(t, cfg.IsCompoundTerm("codespan"))
	assert.False(t, cfg.IsCompoundTerm("Code"))
}
