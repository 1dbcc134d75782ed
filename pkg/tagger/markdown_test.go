package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospellscan/pkg/natural"
	"github.com/yaklabco/gospellscan/pkg/textbuf"
)

func collectTexts(t *testing.T, tg NaturalTextTagger, snap *textbuf.Snapshot) []string {
	t.Helper()
	var texts []string
	for sp := range tg.Tags(snap, []textbuf.Range{{Start: 0, End: len(snap.Content)}}) {
		assert.Equal(t, natural.KindPlainText, sp.Kind)
		texts = append(texts, sp.Text(snap))
	}
	return texts
}

func TestMarkdownTaggerProse(t *testing.T) {
	content := "# Title here\n\nSome prose text.\n"
	snap := textbuf.NewSnapshot("doc.md", []byte(content))
	tg := NewMarkdownTagger(snap, nil)

	texts := collectTexts(t, tg, snap)
	assert.Contains(t, texts, "Title here")
	assert.Contains(t, texts, "Some prose text.")
}

func TestMarkdownTaggerCoalescesAdjacentSegments(t *testing.T) {
	content := "Alpha beta gamma\n"
	snap := textbuf.NewSnapshot("doc.md", []byte(content))
	tg := NewMarkdownTagger(snap, nil)

	// One span for the whole line even when the parser fragments it.
	texts := collectTexts(t, tg, snap)
	assert.Equal(t, []string{"Alpha beta gamma"}, texts)
}

func TestMarkdownTaggerSkipsCode(t *testing.T) {
	content := "Prose before.\n\n```\nfencedCode here\n```\n\nUse `inlineCode` after.\n"
	snap := textbuf.NewSnapshot("doc.md", []byte(content))
	tg := NewMarkdownTagger(snap, nil)

	texts := collectTexts(t, tg, snap)
	assert.Contains(t, texts, "Prose before.")
	assert.NotContains(t, texts, "fencedCode here")
	assert.NotContains(t, texts, "inlineCode")
}

func TestMarkdownTaggerStaleSnapshot(t *testing.T) {
	snap := textbuf.NewSnapshot("doc.md", []byte("prose\n"))
	tg := NewMarkdownTagger(snap, nil)

	stale := textbuf.NewSnapshot("doc.md", []byte("prose\n"))
	stale.Version = 5

	count := 0
	for range tg.Tags(stale, []textbuf.Range{{Start: 0, End: 6}}) {
		count++
	}
	assert.Zero(t, count)
}

func TestMarkdownTaggerRescan(t *testing.T) {
	buf := textbuf.NewBuffer("doc.md", []byte("old prose\n"))
	tg := NewMarkdownTagger(buf.Snapshot(), nil)
	buf.OnChange(tg.Rescan)

	var gotStart, gotEnd int
	tg.OnTagsChanged(func(start, end int) {
		gotStart, gotEnd = start, end
	})

	snap, err := buf.Apply(textbuf.Edit{Start: 0, End: 3, Text: []byte("new")})
	require.NoError(t, err)

	texts := collectTexts(t, tg, snap)
	assert.Contains(t, texts, "new prose")
	assert.Equal(t, 0, gotStart)
	assert.Equal(t, snap.LineCount()-1, gotEnd)
}

func TestPlainTextTagger(t *testing.T) {
	content := "first line\n\n   \nlast line"
	snap := textbuf.NewSnapshot("notes.txt", []byte(content))
	tg := NewPlainTextTagger(snap, nil)

	texts := collectTexts(t, tg, snap)
	assert.Equal(t, []string{"first line", "last line"}, texts)
}

func TestPlainTextTaggerRangeRestriction(t *testing.T) {
	content := "one\ntwo\nthree\n"
	snap := textbuf.NewSnapshot("notes.txt", []byte(content))
	tg := NewPlainTextTagger(snap, nil)

	var texts []string
	for sp := range tg.Tags(snap, []textbuf.Range{snap.LineRange(1)}) {
		texts = append(texts, sp.Text(snap))
	}
	assert.Equal(t, []string{"two"}, texts)
}

func TestPlainTextTaggerRescan(t *testing.T) {
	buf := textbuf.NewBuffer("notes.txt", []byte("alpha\n"))
	tg := NewPlainTextTagger(buf.Snapshot(), nil)
	buf.OnChange(tg.Rescan)

	snap, err := buf.Apply(textbuf.Edit{Start: 0, End: 5, Text: []byte("beta")})
	require.NoError(t, err)

	texts := collectTexts(t, tg, snap)
	assert.Equal(t, []string{"beta"}, texts)
}
