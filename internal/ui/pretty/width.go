package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// defaultWidth is assumed when the writer is not a terminal.
const defaultWidth = 100

// TerminalWidth returns the column width of the writer's terminal, or
// defaultWidth when the writer is not a terminal or its size is unknown.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

// TruncateToWidth shortens s to at most width runes, replacing the cut tail
// with "..." so long source lines do not wrap in context output.
func TruncateToWidth(s string, width int) string {
	if width <= 3 {
		width = 4
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
