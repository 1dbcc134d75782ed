package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospellscan/pkg/natural"
	"github.com/yaklabco/gospellscan/pkg/spellconfig"
	"github.com/yaklabco/gospellscan/pkg/tagger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSingleCSharpFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Widget.cs", "// hello world\nvar x = \"some text\";\n")

	r := New(tagger.DefaultRegistry)
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 0, result.Stats.FilesErrored)
	assert.True(t, result.HasWords())

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]
	assert.Equal(t, "csharp", outcome.ContentType)
	assert.Equal(t, 2, outcome.Spans)

	var texts []string
	for _, w := range outcome.Words {
		texts = append(texts, w.Text)
	}
	assert.Equal(t, []string{"hello", "world", "some", "text"}, texts)

	// Words carry 1-based positions.
	assert.Equal(t, 1, outcome.Words[0].Line)
	assert.Equal(t, 4, outcome.Words[0].Column)
	assert.Equal(t, natural.KindComment, outcome.Words[0].Kind)
	assert.Equal(t, natural.KindString, outcome.Words[2].Kind)
}

func TestRunDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.cs", "// beta\n")
	writeFile(t, dir, "a.cs", "// alpha\n")
	writeFile(t, dir, "c.cs", "// gamma\n")

	r := New(tagger.DefaultRegistry)
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       4,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, "a.cs", filepath.Base(result.Files[0].Path))
	assert.Equal(t, "b.cs", filepath.Base(result.Files[1].Path))
	assert.Equal(t, "c.cs", filepath.Base(result.Files[2].Path))
}

func TestRunDeprecatedTerms(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.cs", "// the whitelist is checked\n")

	cfg := spellconfig.NewConfig()
	cfg.DeprecatedTerms = map[string]string{"whitelist": "allow list"}

	r := New(tagger.DefaultRegistry)
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.DeprecatedTotal)
	assert.True(t, result.HasDeprecated())

	var deprecated *Word
	for i := range result.Files[0].Words {
		if result.Files[0].Words[i].Deprecated() {
			deprecated = &result.Files[0].Words[i]
		}
	}
	require.NotNil(t, deprecated)
	assert.Equal(t, "whitelist", deprecated.Text)
	assert.Equal(t, "allow list", deprecated.Preferred)
}

func TestRunDeprecatedTermMixedCase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.cs", "// pass the subKey along\n")

	cfg := spellconfig.NewConfig()
	cfg.DeprecatedTerms = map[string]string{"subKey": "subkey"}

	r := New(tagger.DefaultRegistry)
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	// The term survives camel splitting whole and carries its replacement.
	assert.Equal(t, 1, result.Stats.DeprecatedTotal)

	var deprecated *Word
	for i := range result.Files[0].Words {
		if result.Files[0].Words[i].Deprecated() {
			deprecated = &result.Files[0].Words[i]
		}
	}
	require.NotNil(t, deprecated)
	assert.Equal(t, "subKey", deprecated.Text)
	assert.Equal(t, "subkey", deprecated.Preferred)
}

func TestRunForcedContentType(t *testing.T) {
	dir := t.TempDir()
	// .txt would normally be plain text; force the C# tagger so the
	// comment marker is honored.
	writeFile(t, dir, "snippet.txt", "// forced comment\n")

	r := New(tagger.DefaultRegistry)
	result, err := r.Run(context.Background(), Options{
		Paths:       []string{"."},
		WorkingDir:  dir,
		ContentType: "csharp",
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, "csharp", result.Files[0].ContentType)
	require.Len(t, result.Files[0].Words, 2)
	assert.Equal(t, natural.KindComment, result.Files[0].Words[0].Kind)
}

func TestRunMarkdownFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Title\n\nSome prose here.\n\n```go\ncode ignored\n```\n")

	r := New(tagger.DefaultRegistry)
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]
	assert.Equal(t, "markdown", outcome.ContentType)

	var texts []string
	for _, w := range outcome.Words {
		texts = append(texts, w.Text)
	}
	assert.Contains(t, texts, "Title")
	assert.Contains(t, texts, "prose")
	assert.NotContains(t, texts, "ignored")
}

func TestRunCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cs", "// alpha\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(tagger.DefaultRegistry)
	_, err := r.Run(ctx, Options{Paths: []string{"."}, WorkingDir: dir})
	require.Error(t, err)
}

func TestRunMissingPath(t *testing.T) {
	r := New(tagger.DefaultRegistry)
	_, err := r.Run(context.Background(), Options{
		Paths:      []string{"no-such-dir"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
}

func TestRunEmptyDirectory(t *testing.T) {
	r := New(tagger.DefaultRegistry)
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.False(t, result.HasWords())
}
