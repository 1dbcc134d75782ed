// Package runner provides multi-file scanning orchestration.
package runner

import "github.com/yaklabco/gospellscan/pkg/spellconfig"

// Options controls multi-file scanning behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered scannable. Defaults via DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// ContentType forces a content type for every file instead of
	// detecting one per file. Empty means auto-detect.
	ContentType string

	// CollectSpans keeps the natural-text spans themselves on each
	// FileOutcome in addition to the words split from them.
	CollectSpans bool

	// Config is the resolved configuration for this run.
	Config *spellconfig.Config
}

// DefaultExtensions returns the default set of scannable file extensions.
func DefaultExtensions() []string {
	return []string{
		".cs",
		".c", ".h",
		".cpp", ".cc", ".cxx", ".hpp",
		".md", ".markdown",
		".txt",
	}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveConfig returns the config to use, defaulting if nil.
func (o Options) effectiveConfig() *spellconfig.Config {
	if o.Config == nil {
		return spellconfig.NewConfig()
	}
	return o.Config
}
