package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gospellscan/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string     `json:"path"`
	ContentType string     `json:"contentType,omitempty"`
	Spans       int        `json:"spans"`
	Words       []JSONWord `json:"words"`
	Error       string     `json:"error,omitempty"`
}

// JSONWord represents a single located word.
type JSONWord struct {
	Text      string `json:"text"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Offset    int    `json:"offset"`
	Kind      string `json:"kind"`
	Preferred string `json:"preferred,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked   int            `json:"filesChecked"`
	FilesWithWords int            `json:"filesWithWords"`
	FilesErrored   int            `json:"filesErrored"`
	TotalSpans     int            `json:"totalSpans"`
	TotalWords     int            `json:"totalWords"`
	ByKind         map[string]int `json:"byKind"`
	Deprecated     int            `json:"deprecated"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalWords, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			ByKind: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        file.Path,
			ContentType: file.ContentType,
			Spans:       file.Spans,
			Words:       make([]JSONWord, 0, len(file.Words)),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		for _, word := range file.Words {
			fileResult.Words = append(fileResult.Words, JSONWord{
				Text:      word.Text,
				Line:      word.Line,
				Column:    word.Column,
				Offset:    word.Offset,
				Kind:      word.Kind.String(),
				Preferred: word.Preferred,
			})
			output.Summary.TotalWords++
			output.Summary.ByKind[word.Kind.String()]++
			if word.Deprecated() {
				output.Summary.Deprecated++
			}
		}

		if len(file.Words) > 0 {
			output.Summary.FilesWithWords++
		}
		output.Summary.TotalSpans += file.Spans

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
