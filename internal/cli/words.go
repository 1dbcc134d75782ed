package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospellscan/internal/configloader"
	"github.com/yaklabco/gospellscan/internal/logging"
	"github.com/yaklabco/gospellscan/pkg/reporter"
	"github.com/yaklabco/gospellscan/pkg/runner"
	"github.com/yaklabco/gospellscan/pkg/spellconfig"
	"github.com/yaklabco/gospellscan/pkg/tagger"
)

// ErrWordsFound is returned when the scan found something to report:
// deprecated terms, file errors, or (in strict mode) any words at all.
var ErrWordsFound = errors.New("words found")

type wordsFlags struct {
	format      string
	contentType string
	ignore      []string
	jobs        int
	strict      bool
	noContext   bool
	compact     bool
}

func newWordsCommand() *cobra.Command {
	flags := &wordsFlags{}

	cmd := &cobra.Command{
		Use:   "words [paths...]",
		Short: "Extract spell-checkable words from source files",
		Long:  wordsLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(cmd, args, flags)
		},
	}

	addWordsFlags(cmd, flags)

	return cmd
}

const wordsLongDescription = `Extract spell-checkable words from source files.

By default, scans all supported files (.cs, .c, .h, .cpp, .md, .txt) in the
current directory and subdirectories. Specify paths to scan specific files
or directories.

Examples:
  gospellscan words                  # Scan current directory
  gospellscan words src/             # Scan src directory
  gospellscan words Widget.cs        # Scan single file
  gospellscan words --format json    # Output as JSON for tooling
  gospellscan words --type csharp    # Force the C# tagger for all files
  gospellscan words --strict         # Nonzero exit when any word is found`

func runWords(cmd *cobra.Command, args []string, flags *wordsFlags) error {
	result, opts, err := executeScan(cmd, args, flags, false)
	if err != nil {
		return err
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	// Parse output format.
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		WorkingDir:  opts.WorkingDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logging.FromContext(ctx).Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return &ExitError{Code: code}
	}

	return nil
}

// executeScan loads configuration, runs the file scan, and returns the
// result together with the runner options used.
func executeScan(cmd *cobra.Command, args []string, flags *wordsFlags, collectSpans bool) (*runner.Result, runner.Options, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, runner.Options{}, fmt.Errorf("get config flag: %w", err)
	}

	// Get working directory for config discovery.
	workDir, err := os.Getwd()
	if err != nil {
		return nil, runner.Options{}, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, runner.Options{}, errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	if cfg == nil {
		cfg = spellconfig.NewConfig()
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	scanRunner := runner.New(tagger.DefaultRegistry)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: flags.ignore,
		Jobs:         flags.jobs,
		ContentType:  flags.contentType,
		CollectSpans: collectSpans,
		Config:       cfg,
	}

	logger.Debug("starting scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := scanRunner.Run(ctx, runOpts)
	if err != nil {
		return nil, runOpts, errors.Join(errors.New("scan failed"), err)
	}

	logger.Debug("scan complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldSpansTotal, result.Stats.SpansTotal,
		logging.FieldWordsTotal, result.Stats.WordsTotal,
	)

	return result, runOpts, nil
}

func addWordsFlags(cmd *cobra.Command, flags *wordsFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary")
	cmd.Flags().StringVar(&flags.contentType, "type", "", "force content type: csharp, c, cpp, markdown, plaintext")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "nonzero exit when any word is found")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
