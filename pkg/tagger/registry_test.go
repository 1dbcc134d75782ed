package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospellscan/pkg/spellconfig"
	"github.com/yaklabco/gospellscan/pkg/textbuf"
)

func TestRegistryRegisterAndResolve(t *testing.T) {
	reg := NewRegistry()
	reg.Register("csharp", NewCSharpTagger)
	reg.RegisterAlias("cs", "csharp")

	canonical, factory, ok := reg.Resolve("csharp")
	require.True(t, ok)
	assert.Equal(t, "csharp", canonical)
	assert.NotNil(t, factory)

	canonical, _, ok = reg.Resolve("cs")
	require.True(t, ok)
	assert.Equal(t, "csharp", canonical)

	_, _, ok = reg.Resolve("cobol")
	assert.False(t, ok)
}

func TestRegistryAliasToMissingTarget(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterAlias("cs", "csharp")

	_, _, ok := reg.Resolve("cs")
	assert.False(t, ok)
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register("plaintext", NewPlainTextTagger)

	factory, ok := reg.Get("plaintext")
	require.True(t, ok)
	assert.NotNil(t, factory)

	_, ok = reg.Get("nope")
	assert.False(t, ok)
}

func TestRegistryContentTypesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register("markdown", NewMarkdownTagger)
	reg.Register("csharp", NewCSharpTagger)
	reg.Register("c", NewCTagger)

	assert.Equal(t, []string{"c", "csharp", "markdown"}, reg.ContentTypes())
}

func TestDefaultRegistryBuiltins(t *testing.T) {
	for _, key := range []string{"csharp", "c", "cpp", "markdown", "plaintext"} {
		_, ok := DefaultRegistry.Get(key)
		assert.True(t, ok, "content type %s", key)
	}

	aliases := map[string]string{
		"cs":   "csharp",
		"c++":  "cpp",
		"md":   "markdown",
		"text": "plaintext",
	}
	for alias, want := range aliases {
		canonical, _, ok := DefaultRegistry.Resolve(alias)
		require.True(t, ok, "alias %s", alias)
		assert.Equal(t, want, canonical)
	}
}

func TestCSharpTaggerEndToEnd(t *testing.T) {
	snap := textbuf.NewSnapshot("test.cs", []byte("// hello world\nvar s = \"lit text\";\n"))
	tg := NewCSharpTagger(snap, spellconfig.NewConfig())

	var texts []string
	for sp := range tg.Tags(snap, []textbuf.Range{{Start: 0, End: len(snap.Content)}}) {
		texts = append(texts, sp.Text(snap))
	}
	assert.Equal(t, []string{"hello world", "lit text"}, texts)
}
