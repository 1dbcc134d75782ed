package tagger

import (
	"github.com/yaklabco/gospellscan/pkg/natural"
	"github.com/yaklabco/gospellscan/pkg/spellconfig"
	"github.com/yaklabco/gospellscan/pkg/textbuf"
)

// NewCSharpTagger creates the incremental lexical scanner configured for
// C#-style source: verbatim and interpolated strings, doc-comment XML.
func NewCSharpTagger(snap *textbuf.Snapshot, cfg *spellconfig.Config) NaturalTextTagger {
	return natural.NewScanner(snap, cfg, natural.DialectCSharp)
}

// NewCTagger creates the incremental lexical scanner configured for C/C++
// source: R"..." raw strings and include-path suppression.
func NewCTagger(snap *textbuf.Snapshot, cfg *spellconfig.Config) NaturalTextTagger {
	return natural.NewScanner(snap, cfg, natural.DialectC)
}
