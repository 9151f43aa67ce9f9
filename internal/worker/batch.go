package worker

import (
	"context"

	"github.com/termtrack/termtrack/internal/model"
)

// Runner extracts a single file into a report
type Runner interface {
	ExtractFile(ctx context.Context, path string) (*model.Report, error)
}

// ExtractJob processes one file through a Runner
type ExtractJob struct {
	Path   string
	Runner Runner
}

// Execute runs the extraction for the job's file
func (j *ExtractJob) Execute(ctx context.Context) Result {
	report, err := j.Runner.ExtractFile(ctx, j.Path)
	return &ExtractResult{Path: j.Path, Report: report, Error: err}
}

// ExtractResult is the outcome of one file's extraction
type ExtractResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor runs many files through a Runner concurrently
type BatchProcessor struct {
	runner      Runner
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor. maxPerSecond <= 0 disables
// throttling.
func NewBatchProcessor(runner Runner, concurrency int, maxPerSecond float64) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
		limiter:     NewLimiter(maxPerSecond, 1),
	}
}

// Process extracts every path and returns one result per input, in
// completion order. A canceled context stops submission; jobs already
// running report their own context errors.
func (b *BatchProcessor) Process(ctx context.Context, paths []string) []*ExtractResult {
	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		defer pool.CloseAndWait()
		for _, path := range paths {
			if err := b.limiter.Wait(ctx); err != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
			pool.Submit(&ExtractJob{Path: path, Runner: b.runner})
		}
	}()

	results := make([]*ExtractResult, 0, len(paths))
	for res := range pool.Results() {
		results = append(results, res.(*ExtractResult))
	}
	return results
}
