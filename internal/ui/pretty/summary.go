package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/gospellscan/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "42 words in 3 files (2 deprecated)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.WordsTotal == 0 {
		return s.Success.Render("No words found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed)) + "\n"
	}

	var parts []string

	wordWord := "words"
	if stats.WordsTotal == 1 {
		wordWord = "word"
	}
	parts = append(parts, fmt.Sprintf("%d %s", stats.WordsTotal, wordWord))

	fileWord := wordFiles
	if stats.FilesWithWords == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithWords, fileWord))

	if stats.DeprecatedTotal > 0 {
		parts = append(parts, s.Deprecated.Render(fmt.Sprintf("%d deprecated", stats.DeprecatedTotal)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithWords > 0 {
		builder.WriteString("  Files with words:  " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesWithWords)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	// Spans and words
	builder.WriteString("  Natural-text spans: " +
		s.SummaryValue.Render(strconv.Itoa(stats.SpansTotal)) + "\n")
	builder.WriteString("  Words:              " +
		s.SummaryValue.Render(strconv.Itoa(stats.WordsTotal)) + "\n")

	// Breakdown by span kind, stable order.
	kinds := make([]string, 0, len(stats.WordsByKind))
	for kind := range stats.WordsByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		builder.WriteString(fmt.Sprintf("    %-16s  %s\n",
			kind, s.SummaryValue.Render(strconv.Itoa(stats.WordsByKind[kind]))))
	}

	if stats.DeprecatedTotal > 0 {
		builder.WriteString("  Deprecated terms:   " +
			s.Deprecated.Render(strconv.Itoa(stats.DeprecatedTotal)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Scan completed with errors"))
	case stats.DeprecatedTotal > 0:
		builder.WriteString(s.Deprecated.Render("Scan found deprecated terms"))
	default:
		builder.WriteString(s.Success.Render("Scan complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
