package cli

import "github.com/yaklabco/gospellscan/pkg/runner"

// Exit codes for gospellscan.
const (
	// ExitSuccess indicates successful execution with no findings.
	ExitSuccess = 0

	// ExitDeprecatedFound indicates deprecated terms were found.
	ExitDeprecatedFound = 1

	// ExitWordsFound indicates candidate words were found (strict mode only).
	ExitWordsFound = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitError carries a non-zero exit code through cobra's error return so
// main can exit with it. It matches ErrWordsFound under errors.Is, letting
// callers suppress error logging for ordinary findings.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return "words found" }

func (e *ExitError) Is(target error) bool { return target == ErrWordsFound }

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}

	if result.Stats.DeprecatedTotal > 0 {
		return ExitDeprecatedFound
	}

	if strict && result.Stats.WordsTotal > 0 {
		return ExitWordsFound
	}

	return ExitSuccess
}
