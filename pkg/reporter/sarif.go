package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gospellscan/pkg/runner"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// Rule IDs emitted by the SARIF reporter.
const (
	sarifRuleUnknownWord    = "unknown-word"
	sarifRuleDeprecatedTerm = "deprecated-term"
	sarifRuleScanError      = "scan-error"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes one class of reported finding.
type SARIFRule struct {
	ID               string               `json:"id"`
	ShortDescription SARIFMultiformatText `json:"shortDescription,omitempty"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations,omitempty"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           *SARIFRegion          `json:"region,omitempty"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// SARIFReporter formats results as SARIF for code-scanning consumers.
type SARIFReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	output := &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs: []SARIFRun{{
			Tool: SARIFTool{
				Driver: SARIFDriver{
					Name:           "gospellscan",
					Version:        "1.0.0",
					InformationURI: "https://github.com/yaklabco/gospellscan",
					Rules: []SARIFRule{
						{
							ID: sarifRuleUnknownWord,
							ShortDescription: SARIFMultiformatText{
								Text: "Word is not recognized and should be spell-checked",
							},
							DefaultConfig: &SARIFRuleConfig{Level: "note"},
						},
						{
							ID: sarifRuleDeprecatedTerm,
							ShortDescription: SARIFMultiformatText{
								Text: "Term is deprecated and has a preferred replacement",
							},
							DefaultConfig: &SARIFRuleConfig{Level: "warning"},
						},
						{
							ID: sarifRuleScanError,
							ShortDescription: SARIFMultiformatText{
								Text: "File could not be scanned",
							},
							DefaultConfig: &SARIFRuleConfig{Level: "error"},
						},
					},
				},
			},
			Results: make([]SARIFResult, 0),
		}},
	}

	if result == nil {
		return output
	}

	run := &output.Runs[0]
	for _, file := range result.Files {
		if file.Error != nil {
			run.Results = append(run.Results, SARIFResult{
				RuleID:  sarifRuleScanError,
				Level:   "error",
				Message: SARIFMessage{Text: file.Error.Error()},
				Locations: []SARIFLocation{{
					PhysicalLocation: SARIFPhysicalLocation{
						ArtifactLocation: SARIFArtifactLocation{URI: file.Path},
					},
				}},
			})
			continue
		}

		for _, word := range file.Words {
			run.Results = append(run.Results, wordResult(file.Path, word))
		}
	}

	return output
}

func wordResult(path string, word runner.Word) SARIFResult {
	ruleID := sarifRuleUnknownWord
	level := "note"
	message := fmt.Sprintf("Unknown word %q", word.Text)
	if word.Deprecated() {
		ruleID = sarifRuleDeprecatedTerm
		level = "warning"
		message = fmt.Sprintf("Deprecated term %q; use %q instead", word.Text, word.Preferred)
	}

	return SARIFResult{
		RuleID:  ruleID,
		Level:   level,
		Message: SARIFMessage{Text: message},
		Locations: []SARIFLocation{{
			PhysicalLocation: SARIFPhysicalLocation{
				ArtifactLocation: SARIFArtifactLocation{URI: path},
				// Columns count bytes, matching the runner's coordinates.
				Region: &SARIFRegion{
					StartLine:   word.Line,
					StartColumn: word.Column,
					EndColumn:   word.Column + len(word.Text),
				},
			},
		}},
	}
}
