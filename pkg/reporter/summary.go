package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gospellscan/internal/ui/pretty"
	"github.com/yaklabco/gospellscan/pkg/runner"
)

// SummaryReporter writes only the aggregate statistics block.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		return 0, nil
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	return result.Stats.WordsTotal, nil
}
