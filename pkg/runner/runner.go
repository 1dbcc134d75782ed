package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/gospellscan/pkg/langdetect"
	"github.com/yaklabco/gospellscan/pkg/natural"
	"github.com/yaklabco/gospellscan/pkg/spellconfig"
	"github.com/yaklabco/gospellscan/pkg/tagger"
	"github.com/yaklabco/gospellscan/pkg/textbuf"
	"github.com/yaklabco/gospellscan/pkg/wordsplit"
)

// Runner orchestrates multi-file scanning using a tagger registry.
type Runner struct {
	// Registry resolves content types to tagger factories.
	Registry *tagger.Registry
}

// New creates a new Runner with the given registry.
func New(registry *tagger.Registry) *Runner {
	return &Runner{Registry: registry}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Processes files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	cfg := opts.effectiveConfig()

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, cfg, opts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect results.
	// Use a map to maintain order since workers may complete out of order.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	// Build result in deterministic order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	cfg *spellconfig.Config,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(path, cfg, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile tags a single file and splits its natural text into words.
func (r *Runner) processFile(path string, cfg *spellconfig.Config, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = langdetect.Detect(path, content)
	}

	resolved, factory, ok := r.Registry.Resolve(contentType)
	if !ok {
		resolved, factory, ok = r.Registry.Resolve(langdetect.TypePlainText)
		if !ok {
			outcome.Error = fmt.Errorf("no tagger for content type %q", contentType)
			return outcome
		}
	}
	outcome.ContentType = resolved

	snap := textbuf.NewSnapshot(path, content)
	tg := factory(snap, cfg)
	splitter := wordsplit.New(cfg, isCStyle(resolved))

	for span := range tg.Tags(snap, natural.DocumentRange(snap)) {
		outcome.Spans++
		text := span.Text(snap)

		if opts.CollectSpans {
			line, col := snap.LineAt(span.Start)
			outcome.TextSpans = append(outcome.TextSpans, TextSpan{
				Path:   path,
				Line:   line,
				Column: col,
				Offset: span.Start,
				Length: span.Len(),
				Kind:   span.Kind,
				Text:   text,
			})
		}

		for ws := range splitter.Words(text, originFor(span.Kind)) {
			wordText := ws.Text(text)
			if !splitter.IsProbablyARealWord(wordText) {
				continue
			}

			offset := span.Start + ws.Start
			line, col := snap.LineAt(offset)
			preferred, _ := cfg.DeprecatedReplacement(wordText)
			outcome.Words = append(outcome.Words, Word{
				Path:      path,
				Text:      wordText,
				Line:      line,
				Column:    col,
				Offset:    offset,
				Kind:      span.Kind,
				Preferred: preferred,
			})
		}
	}

	return outcome
}

// isCStyle reports whether a content type carries C-style escape sequences.
func isCStyle(contentType string) bool {
	switch contentType {
	case langdetect.TypeCSharp, langdetect.TypeC, langdetect.TypeCPP:
		return true
	}
	return false
}

// originFor maps a span kind to the word splitter origin controlling
// which skip rules apply inside the span.
func originFor(kind natural.SpanKind) wordsplit.Origin {
	switch kind {
	case natural.KindComment:
		return wordsplit.OriginComment
	case natural.KindDocComment:
		return wordsplit.OriginDocComment
	case natural.KindString:
		return wordsplit.OriginString
	case natural.KindVerbatimString:
		return wordsplit.OriginVerbatimString
	case natural.KindInterpolatedString:
		return wordsplit.OriginInterpolatedString
	case natural.KindAttributeValue:
		return wordsplit.OriginAttributeValue
	case natural.KindRegionTitle:
		return wordsplit.OriginRegionTitle
	default:
		return wordsplit.OriginPlainText
	}
}
