// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical layering,
// and environment variable support.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/gospellscan/pkg/spellconfig"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final layered configuration.
	Config *spellconfig.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by layering all sources.
// Precedence (highest to lowest):
//  1. Environment variables (GOSPELLSCAN_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.gospellscan.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/gospellscan/config.yaml)
//  5. System config (/etc/gospellscan/config.yaml)
//  6. Defaults
//
// Layers are applied by unmarshalling each document over the accumulated
// configuration, so a document only affects the fields it names.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

	// Resolve working directory
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	// Start with defaults
	cfg := spellconfig.NewConfig()

	// Discover config paths
	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Apply layers in order (lowest to highest precedence)

	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := applyConfigFile(cfg, paths.System); err != nil {
			return nil, fmt.Errorf("load system config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.System)
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := applyConfigFile(cfg, paths.User); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if !opts.IgnoreProjectConfig && paths.Project != "" {
		if err := applyConfigFile(cfg, paths.Project); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if opts.ExplicitPath != "" {
		if err := applyConfigFile(cfg, opts.ExplicitPath); err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	// Environment variables (highest precedence)
	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	result.Config = cfg
	return result, nil
}

// applyConfigFile layers a YAML config file over the accumulated configuration.
func applyConfigFile(cfg *spellconfig.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if err := spellconfig.ApplyYAML(cfg, content); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}
