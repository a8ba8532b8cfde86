package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/urlrisk/internal/model"
)

// DefaultConcurrency is the number of URLs scored at once when no
// WithConcurrency option is given.
const DefaultConcurrency = 10

// Assessor scores a single URL. *scorer.Scorer satisfies it.
type Assessor interface {
	Assess(url string) (model.Assessment, error)
}

// Result is the outcome of scoring one URL of a batch.
type Result struct {
	// Index is the position of URL in the input slice.
	Index int

	// URL is the input as supplied.
	URL string

	// Assessment is valid only when Err is nil.
	Assessment model.Assessment

	// Err is the scoring error, or the context error if the batch was
	// cancelled before this URL was scored.
	Err error
}

// BatchProcessor handles concurrent scoring of multiple URLs.
type BatchProcessor struct {
	assessor Assessor

	// concurrency is the maximum number of concurrent scorings.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent scorings.
// Non-positive values keep the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor around assessor.
func NewBatchProcessor(assessor Assessor, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		assessor:    assessor,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch scores urls concurrently and returns one Result per URL in
// input order.
//
// Every slot of the returned slice is filled, even for URLs that failed or
// were skipped because ctx was cancelled. The returned error is non-nil only
// when ctx was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, urls []string) ([]Result, error) {
	results := make([]Result, len(urls))
	err := bp.ProcessBatchWithCallback(ctx, urls, func(r Result) {
		// Each goroutine owns a distinct index, so no lock is needed.
		results[r.Index] = r
	})
	return results, err
}

// ProcessBatchWithCallback scores urls and calls callback for each one as
// soon as it is done. This is useful for streaming results.
//
// The callback is called from the goroutine that scored the URL, so it
// must be safe for concurrent use if it touches shared state. It is called
// exactly once per URL, including for URLs skipped due to cancellation.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	urls []string,
	callback func(Result),
) error {
	bp.logger.Debug("starting batch scoring",
		"total_urls", len(urls),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	g := new(errgroup.Group)
	g.SetLimit(bp.concurrency)

	for i, url := range urls {
		g.Go(func() error {
			r := Result{Index: i, URL: url}

			select {
			case <-ctx.Done():
				r.Err = ctx.Err()
				callback(r)
				return nil
			default:
			}

			r.Assessment, r.Err = bp.assessor.Assess(url)
			if r.Err != nil {
				bp.logger.Warn("scoring failed",
					"url", url,
					"error", r.Err,
				)
			}

			callback(r)
			return nil
		})
	}

	// Goroutines never return errors; per-URL errors live on the results.
	_ = g.Wait() //nolint:errcheck // always nil

	bp.logger.Debug("batch scoring complete",
		"total_urls", len(urls),
		"elapsed", time.Since(startTime),
	)

	return ctx.Err()
}

// Assessments returns the assessments of the successful results in order,
// and the failed results separately.
func Assessments(results []Result) ([]model.Assessment, []Result) {
	ok := make([]model.Assessment, 0, len(results))
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
			continue
		}
		ok = append(ok, r.Assessment)
	}
	return ok, failed
}
