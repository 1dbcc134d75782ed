package spellconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	t.Run("absent fields keep defaults", func(t *testing.T) {
		cfg, err := FromYAML([]byte("ignore_strings: true\n"))
		require.NoError(t, err)

		assert.True(t, cfg.IgnoreStrings)
		assert.True(t, cfg.IgnoreQuadSlashComments)
		assert.True(t, cfg.IgnoreAllUppercase)
		assert.Equal(t, "&", cfg.Mnemonic)
	})

	t.Run("default true field can be disabled", func(t *testing.T) {
		cfg, err := FromYAML([]byte("ignore_all_uppercase: false\n"))
		require.NoError(t, err)
		assert.False(t, cfg.IgnoreAllUppercase)
	})

	t.Run("lists and maps", func(t *testing.T) {
		doc := `
ignored_xml_elements: [math, svg]
deprecated_terms:
  whitelist: allow list
compound_terms:
  - CodeSpan
`
		cfg, err := FromYAML([]byte(doc))
		require.NoError(t, err)

		assert.Equal(t, []string{"math", "svg"}, cfg.IgnoredXMLElements)
		assert.Equal(t, "allow list", cfg.DeprecatedTerms["whitelist"])
		assert.True(t, cfg.IsCompoundTerm("CodeSpan"))
	})

	t.Run("invalid mnemonic sanitized", func(t *testing.T) {
		cfg, err := FromYAML([]byte("mnemonic: '%'\n"))
		require.NoError(t, err)
		assert.Equal(t, "&", cfg.Mnemonic)
	})

	t.Run("unknown character class normalized", func(t *testing.T) {
		cfg, err := FromYAML([]byte("ignored_character_class: martian\n"))
		require.NoError(t, err)
		assert.Equal(t, CharClassNone, cfg.IgnoredCharacterClass)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := FromYAML([]byte("ignore_strings: [unclosed"))
		assert.Error(t, err)
	})
}

func TestApplyYAMLLayering(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, ApplyYAML(cfg, []byte("ignore_strings: true\nmnemonic: '_'\n")))
	require.NoError(t, ApplyYAML(cfg, []byte("ignore_doc_comments: true\n")))

	// The second layer only touches the field it names.
	assert.True(t, cfg.IgnoreStrings)
	assert.True(t, cfg.IgnoreDocComments)
	assert.Equal(t, "_", cfg.Mnemonic)
	assert.True(t, cfg.IgnoreQuadSlashComments)
}

func TestYAMLRoundTrip(t *testing.T) {
	orig := NewConfig()
	orig.IgnoreStrings = true
	orig.DeprecatedTerms = map[string]string{"whitelist": "allow list"}
	orig.IgnoredEscapedWords = []string{"brief"}

	data, err := orig.ToYAML()
	require.NoError(t, err)

	parsed, err := FromYAML(data)
	require.NoError(t, err)
	assert.True(t, parsed.IgnoreStrings)
	assert.Equal(t, orig.IgnoredXMLElements, parsed.IgnoredXMLElements)
	assert.Equal(t, orig.SpellCheckedAttributes, parsed.SpellCheckedAttributes)
	assert.Equal(t, orig.DeprecatedTerms, parsed.DeprecatedTerms)
	assert.Equal(t, orig.IgnoredEscapedWords, parsed.IgnoredEscapedWords)
	assert.Equal(t, orig.Mnemonic, parsed.Mnemonic)
}

func TestToYAMLNil(t *testing.T) {
	var cfg *Config
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spell.yml")
	require.NoError(t, os.WriteFile(path, []byte("ignore_strings: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IgnoreStrings)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}
