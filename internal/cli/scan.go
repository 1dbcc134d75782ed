package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospellscan/internal/ui/pretty"
)

func newScanCommand() *cobra.Command {
	flags := &wordsFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Show the natural-text spans found in source files",
		Long: `Show the natural-text spans (comments, doc comments, string literals,
attribute values) that the classifier finds in source files, before word
splitting. Useful for checking what a spell checker would be fed.

Examples:
  gospellscan scan Widget.cs         # Show spans in a single file
  gospellscan scan src/              # Show spans under src
  gospellscan scan --type c file.x   # Force the C tagger`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.contentType, "type", "", "force content type: csharp, c, cpp, markdown, plaintext")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, flags *wordsFlags) error {
	result, _, err := executeScan(cmd, args, flags, true)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	bw := bufio.NewWriter(out)
	defer bw.Flush()

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(bw, "%s: %s\n",
				styles.FilePath.Render(file.Path),
				styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if len(file.TextSpans) == 0 {
			continue
		}

		fmt.Fprintf(bw, "%s %s\n",
			styles.FilePath.Render(file.Path),
			styles.Dim.Render(fmt.Sprintf("(%s, %d spans)", file.ContentType, file.Spans)),
		)

		for _, span := range file.TextSpans {
			fmt.Fprintf(bw, "  %s:%d:%d  %s  %q\n",
				file.Path, span.Line, span.Column,
				styles.SpanKind.Render(span.Kind.String()),
				collapseSpanText(span.Text),
			)
		}

		fmt.Fprintln(bw)
	}

	if result.Stats.FilesErrored > 0 {
		return &ExitError{Code: ExitIOError}
	}

	return nil
}

// collapseSpanText shortens a span for one-line display.
func collapseSpanText(text string) string {
	const maxDisplay = 60

	text = strings.ReplaceAll(text, "\n", " ")
	if len(text) > maxDisplay {
		return text[:maxDisplay] + "..."
	}
	return text
}
