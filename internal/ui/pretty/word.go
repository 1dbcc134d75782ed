package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gospellscan/pkg/runner"
)

// FormatWord formats a single located word for terminal output.
func (s *Styles) FormatWord(word *runner.Word, showContext bool, sourceLine string) string {
	var builder strings.Builder

	// Location: path:line:col
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(word.Path),
		word.Line,
		word.Column,
	)

	kindDisplay := s.Kind.Render("(" + word.Kind.String() + ")")

	wordDisplay := s.Word.Render(word.Text)
	if word.Deprecated() {
		wordDisplay = s.Deprecated.Render(word.Text)
	}

	// Main line: location  word  (kind)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		wordDisplay,
		kindDisplay,
	))

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, word.Column))
	}

	// Deprecated-term replacement
	if word.Deprecated() {
		builder.WriteString("    " + s.Dim.Render("Prefer:") + " " +
			s.Suggestion.Render(word.Preferred) + "\n")
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with word output
	const indent = "        "

	// Source line
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	// Caret marker
	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, wordCount int) string {
	header := s.FilePath.Render(path)
	if wordCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d words)", wordCount))
	}
	return header
}
