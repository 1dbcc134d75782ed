package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospellscan/pkg/runner"
)

func TestExitCodeFromResult(t *testing.T) {
	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{"nil result", nil, false, ExitSuccess},
		{"empty result", &runner.Result{}, false, ExitSuccess},
		{
			"words without strict",
			&runner.Result{Stats: runner.Stats{WordsTotal: 5}},
			false,
			ExitSuccess,
		},
		{
			"words with strict",
			&runner.Result{Stats: runner.Stats{WordsTotal: 5}},
			true,
			ExitWordsFound,
		},
		{
			"deprecated terms",
			&runner.Result{Stats: runner.Stats{WordsTotal: 5, DeprecatedTotal: 1}},
			false,
			ExitDeprecatedFound,
		},
		{
			"file errors win",
			&runner.Result{Stats: runner.Stats{FilesErrored: 1, DeprecatedTotal: 1}},
			false,
			ExitIOError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}

func TestExitError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ExitError{Code: ExitWordsFound})

	require.ErrorIs(t, err, ErrWordsFound)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitWordsFound, exitErr.Code)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand(BuildInfo{Version: "test"})

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["words"])
	assert.True(t, names["scan"])
	assert.True(t, names["init"])
	assert.True(t, names["version"])
}

func TestWordsCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cs"),
		[]byte("// hello world\n"), 0o644))
	t.Chdir(dir)

	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"words", "--color", "never", "--no-context"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "2 words")
}

func TestWordsCommandStrict(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cs"),
		[]byte("// hello world\n"), 0o644))
	t.Chdir(dir)

	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"words", "--color", "never", "--strict"})

	err := root.Execute()
	require.ErrorIs(t, err, ErrWordsFound)
}

func TestScanCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cs"),
		[]byte("// hello world\nvar s = \"text\";\n"), 0o644))
	t.Chdir(dir)

	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"scan", "--color", "never"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "comment")
	assert.Contains(t, out.String(), `"hello world"`)
	assert.Contains(t, out.String(), "string")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	root := NewRootCommand(BuildInfo{})
	root.SetArgs([]string{"init"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(dir, ".gospellscan.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ignored_xml_elements")

	// Second run without --force fails.
	root = NewRootCommand(BuildInfo{})
	root.SetArgs([]string{"init"})
	require.Error(t, root.Execute())

	// --force overwrites.
	root = NewRootCommand(BuildInfo{})
	root.SetArgs([]string{"init", "--force"})
	require.NoError(t, root.Execute())
}
