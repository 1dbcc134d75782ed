package runner

import "github.com/yaklabco/gospellscan/pkg/natural"

// Word is a single spell-checkable word located in a file.
type Word struct {
	// Path is the file the word was found in.
	Path string

	// Text is the word itself, as it appears in the file. For camel-case
	// identifiers this is one sub-word of the identifier.
	Text string

	// Line and Column are 1-based; Column counts bytes.
	Line   int
	Column int

	// Offset is the byte offset of the word within the file.
	Offset int

	// Kind is the kind of natural-text span the word came from.
	Kind natural.SpanKind

	// Preferred is the replacement for a deprecated term, empty otherwise.
	Preferred string
}

// Deprecated reports whether the word is a deprecated term.
func (w Word) Deprecated() bool {
	return w.Preferred != ""
}

// TextSpan is a natural-text span located in a file, collected only when
// Options.CollectSpans is set.
type TextSpan struct {
	// Path is the file the span was found in.
	Path string

	// Line and Column are 1-based; Column counts bytes.
	Line   int
	Column int

	// Offset and Length delimit the span within the file.
	Offset int
	Length int

	// Kind is the kind of natural text.
	Kind natural.SpanKind

	// Text is the span content.
	Text string
}

// FileOutcome is the scan result for a single file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// ContentType is the resolved content type used to tag the file.
	ContentType string

	// Spans is the number of natural-text spans found.
	Spans int

	// TextSpans are the spans themselves, populated only when
	// Options.CollectSpans is set.
	TextSpans []TextSpan

	// Words are the spell-checkable words, in document order.
	Words []Word

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// SpansTotal is the total number of natural-text spans across all files.
	SpansTotal int

	// WordsTotal is the total number of words across all files.
	WordsTotal int

	// WordsByKind maps span kinds to word counts.
	WordsByKind map[string]int

	// FilesWithWords is the number of files with at least one word.
	FilesWithWords int

	// DeprecatedTotal is the number of deprecated-term occurrences.
	DeprecatedTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasWords reports whether any spell-checkable words were found.
func (r *Result) HasWords() bool {
	if r == nil {
		return false
	}
	return r.Stats.WordsTotal > 0
}

// HasDeprecated reports whether any deprecated terms were found.
func (r *Result) HasDeprecated() bool {
	if r == nil {
		return false
	}
	return r.Stats.DeprecatedTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		WordsByKind: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.SpansTotal += outcome.Spans
	r.Stats.WordsTotal += len(outcome.Words)

	if len(outcome.Words) > 0 {
		r.Stats.FilesWithWords++
	}

	for _, word := range outcome.Words {
		r.Stats.WordsByKind[word.Kind.String()]++
		if word.Deprecated() {
			r.Stats.DeprecatedTotal++
		}
	}
}
