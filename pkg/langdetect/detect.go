// Package langdetect resolves files to tagger content types.
// It uses go-enry to detect the language of a file from its name and
// content, normalized to the identifiers the tagger registry is keyed on.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Content type identifiers matching the tagger registry keys.
const (
	TypeCSharp    = "csharp"
	TypeC         = "c"
	TypeCPP       = "cpp"
	TypeMarkdown  = "markdown"
	TypePlainText = "plaintext"
)

// Detect returns the content type for a file. Extension mapping is tried
// first (most reliable for the supported types); go-enry handles everything
// else. Unrecognized content falls back to plain text.
func Detect(path string, content []byte) string {
	if contentType := detectByExtension(path); contentType != "" {
		return contentType
	}

	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == "" && len(content) > 0 {
		// No filename signal: classify by content alone.
		candidates := []string{"C#", "C", "C++", "Markdown", "Text"}
		if detected, safe := enry.GetLanguageByClassifier(content, candidates); safe {
			lang = detected
		}
	}

	return normalize(lang)
}

// detectByExtension maps well-known extensions directly to content types.
func detectByExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cs":
		return TypeCSharp
	case ".c", ".h":
		return TypeC
	case ".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx":
		return TypeCPP
	case ".md", ".markdown", ".mdown":
		return TypeMarkdown
	case ".txt":
		return TypePlainText
	default:
		return ""
	}
}

// normalize converts go-enry language names to registry content types.
func normalize(lang string) string {
	switch lang {
	case "C#":
		return TypeCSharp
	case "C":
		return TypeC
	case "C++":
		return TypeCPP
	case "Markdown":
		return TypeMarkdown
	default:
		return TypePlainText
	}
}
