package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/gospellscan/internal/ui/pretty"
	"github.com/yaklabco/gospellscan/pkg/runner"
	"github.com/yaklabco/gospellscan/pkg/textbuf"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
	width  int

	// snapshots caches per-file line indexes for source context lookup.
	snapshots map[string]*textbuf.Snapshot
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:      opts,
		styles:    pretty.NewStyles(colorEnabled),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
		width:     pretty.TerminalWidth(opts.Writer),
		snapshots: make(map[string]*textbuf.Snapshot),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var totalWords int

	if r.opts.GroupByFile {
		totalWords = r.reportGrouped(ctx, result)
	} else {
		totalWords = r.reportFlat(ctx, result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return totalWords, nil
}

// reportGrouped writes words grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.reportFileError(file)
			continue
		}

		if len(file.Words) == 0 {
			continue
		}

		// File header
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(r.displayPath(file.Path), len(file.Words)))

		for i := range file.Words {
			r.reportWord(&file.Words[i])
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes words without grouping.
func (r *TextReporter) reportFlat(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.reportFileError(file)
			continue
		}

		for i := range file.Words {
			r.reportWord(&file.Words[i])
			total++
		}
	}

	return total
}

func (r *TextReporter) reportWord(word *runner.Word) {
	var sourceLine string
	if r.opts.ShowContext {
		sourceLine = r.getSourceLine(word.Path, word.Line)
	}

	display := *word
	display.Path = r.displayPath(word.Path)
	fmt.Fprint(r.bw, r.styles.FormatWord(&display, r.opts.ShowContext, sourceLine))
}

func (r *TextReporter) reportFileError(file runner.FileOutcome) {
	fmt.Fprintf(r.bw, "%s: %s\n",
		r.styles.FilePath.Render(r.displayPath(file.Path)),
		r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
	)
}

// displayPath makes a path relative to the working directory when possible.
func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil {
		return path
	}
	return rel
}

// getSourceLine extracts a 1-based line from a file, building the line index
// once per file. Files that cannot be read simply yield no context.
func (r *TextReporter) getSourceLine(path string, lineNum int) string {
	snap, ok := r.snapshots[path]
	if !ok {
		content, err := os.ReadFile(path)
		if err != nil {
			r.snapshots[path] = nil
			return ""
		}
		snap = textbuf.NewSnapshot(path, content)
		r.snapshots[path] = snap
	}
	if snap == nil {
		return ""
	}

	content := snap.LineText(lineNum - 1)
	if content == nil {
		return ""
	}
	return pretty.TruncateToWidth(string(content), r.width)
}
