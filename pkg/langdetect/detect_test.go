package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectByExtension(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"csharp source", "Widget.cs", TypeCSharp},
		{"c source", "util.c", TypeC},
		{"c header", "util.h", TypeC},
		{"cpp source", "engine.cpp", TypeCPP},
		{"cpp header", "engine.hpp", TypeCPP},
		{"cc extension", "parser.cc", TypeCPP},
		{"markdown", "README.md", TypeMarkdown},
		{"plain text", "notes.txt", TypePlainText},
		{"uppercase extension", "LEGACY.CS", TypeCSharp},
		{"nested path", "src/internal/Thing.cs", TypeCSharp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.path, nil))
		})
	}
}

func TestDetectUnknownFallsBackToPlainText(t *testing.T) {
	assert.Equal(t, TypePlainText, Detect("data.bin", []byte{0x00, 0x01}))
	assert.Equal(t, TypePlainText, Detect("script.py", []byte("print('hi')\n")))
	assert.Equal(t, TypePlainText, Detect("noext", nil))
}

func TestDetectByContent(t *testing.T) {
	csharp := []byte("using System;\n\nnamespace Demo\n{\n    public class Program\n    {\n        public static void Main() { }\n    }\n}\n")
	// Extension wins even when odd, so use a neutral name for the
	// content path and a typed name for the extension path.
	assert.Equal(t, TypeCSharp, Detect("Program.cs", csharp))
}
