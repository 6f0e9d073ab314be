// Package processor checks pronunciation availability of many words with a
// pool of concurrent workers.
package processor

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"

	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/forvo"
	"github.com/palemoky/tonetrainer/internal/logger"
)

// maxWorkers caps the default worker count
const maxWorkers = 8

// Resolver resolves the usable pronunciations of one word and records the
// outcome in the store.
type Resolver interface {
	Resolve(ctx context.Context, entry *database.Entry) ([]forvo.Candidate, error)
}

// Result counts the outcome of a run.
type Result struct {
	Checked     int
	Available   int
	Unavailable int
}

// Processor handles concurrent availability checks
type Processor struct {
	resolver Resolver
	workers  int
	output   io.Writer
}

// NewProcessor creates a processor. workers <= 0 picks a default from the
// CPU count. The progress bar is drawn on output; nil discards it.
func NewProcessor(resolver Resolver, workers int, output io.Writer) *Processor {
	if workers <= 0 {
		workers = min(runtime.NumCPU(), maxWorkers)
	}
	if output == nil {
		output = io.Discard
	}
	return &Processor{resolver: resolver, workers: workers, output: output}
}

// Workers returns the size of the worker pool.
func (p *Processor) Workers() int {
	return p.workers
}

// Process resolves every entry. Words without a usable pronunciation are
// counted, not failed. The first other error cancels the remaining work and
// is returned together with the counts reached so far.
func (p *Processor) Process(ctx context.Context, entries []database.Entry) (Result, error) {
	if len(entries) == 0 {
		return Result{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	progress := mpb.NewWithContext(ctx,
		mpb.WithOutput(p.output),
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100*time.Millisecond),
	)
	bar := progress.AddBar(int64(len(entries)),
		mpb.PrependDecorators(
			decor.Name("Probing: ", decor.WC{W: 9, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.Name(" | "),
			decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}),
		),
	)

	workCh := make(chan int, p.workers)
	var wg sync.WaitGroup

	var available, unavailable atomic.Int64
	var firstErr error
	var errOnce sync.Once

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range workCh {
				if ctx.Err() != nil {
					continue
				}

				entry := &entries[idx]
				_, err := p.resolver.Resolve(ctx, entry)
				switch {
				case errors.Is(err, apperrors.ErrNoCandidates):
					unavailable.Add(1)
				case err != nil:
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					logger.Debug("Probe worker stopped",
						zap.Int("worker", workerID),
						zap.String("word", entry.Simplified),
						zap.Error(err),
					)
					continue
				default:
					available.Add(1)
				}
				bar.Increment()
			}
		}(i)
	}

	go func() {
		defer close(workCh)
		for i := range entries {
			select {
			case workCh <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()

	result := Result{
		Available:   int(available.Load()),
		Unavailable: int(unavailable.Load()),
	}
	result.Checked = result.Available + result.Unavailable

	if firstErr != nil {
		bar.Abort(false)
		progress.Wait()
		return result, firstErr
	}
	progress.Wait()

	return result, nil
}
