// Package batch encodes many names at once on a bounded pool of goroutines
// and collects the codes, in input order, into a Report.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/isseis/go-soundex/internal/soundex"
	"github.com/oklog/ulid/v2"
)

// ErrInvalidWorkers is returned by NewProcessor for a negative worker count.
var ErrInvalidWorkers = errors.New("worker count must not be negative")

// Options configures a Processor.
type Options struct {
	// Workers is the number of encoding goroutines. Zero means runtime.NumCPU().
	Workers int

	// Logger receives progress records. Nil means slog.Default().
	Logger *slog.Logger

	// Now and NewRunID are overridable for tests.
	Now      func() time.Time
	NewRunID func() string
}

// Processor encodes batches of names.
type Processor struct {
	workers  int
	logger   *slog.Logger
	now      func() time.Time
	newRunID func() string
}

// NewProcessor creates a Processor.
func NewProcessor(opts Options) (*Processor, error) {
	if opts.Workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, opts.Workers)
	}
	p := &Processor{
		workers:  opts.Workers,
		logger:   opts.Logger,
		now:      opts.Now,
		newRunID: opts.NewRunID,
	}
	if p.workers == 0 {
		p.workers = runtime.NumCPU()
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.newRunID == nil {
		p.newRunID = NewRunID
	}
	return p, nil
}

// NewRunID returns a new, time ordered run identifier.
func NewRunID() string {
	return ulid.Make().String()
}

// Process encodes every name. Results[i] always corresponds to names[i].
// When ctx is cancelled, dispatch stops and the context error is returned.
func (p *Processor) Process(ctx context.Context, names []string) (*Report, error) {
	report := &Report{
		RunID:     p.newRunID(),
		StartedAt: p.now(),
		Results:   make([]Result, len(names)),
	}
	logger := p.logger.With(slog.String("run_id", report.RunID))
	logger.Debug("Batch started", "names", len(names), "workers", p.workers)

	workers := min(p.workers, len(names))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				report.Results[i] = Result{Name: names[i], Code: soundex.Encode(names[i])}
			}
		}()
	}

	err := dispatch(ctx, indexes, len(names))
	close(indexes)
	wg.Wait()
	if err != nil {
		logger.Warn("Batch cancelled", "error", err)
		return nil, fmt.Errorf("batch %s cancelled: %w", report.RunID, err)
	}

	for _, res := range report.Results {
		if res.Code == "" {
			report.Empty++
		}
	}
	report.Duration = p.now().Sub(report.StartedAt)

	logger.Info("Batch finished",
		"names", len(names),
		"empty", report.Empty,
		"duration", report.Duration)
	return report, nil
}

func dispatch(ctx context.Context, indexes chan<- int, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case indexes <- i:
		}
	}
	return ctx.Err()
}
