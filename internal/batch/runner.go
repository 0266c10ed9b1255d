package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/lvedit/editdist"
	"github.com/katalvlaran/lvedit/internal/logging"
)

// Options configures a Runner.
type Options struct {
	// Workers is the pool size; 0 means runtime.NumCPU().
	Workers int
	// Seed is the base seed every pair stream is derived from.
	Seed int64
	// Align also reconstructs a manipulation sequence and an alignment.
	// When false only the two-row distance is computed.
	Align bool
	// Logger receives per-pair debug lines and failures; nil discards.
	Logger *slog.Logger
}

// Result is the outcome for one pair. Err is set instead of the other fields
// when the pair failed; a failing pair never stops the batch.
type Result struct {
	Pair          Pair
	Distance      float64
	Ops           []editdist.Op
	AlignedSource []string
	AlignedTarget []string
	Err           error
}

// Runner computes pairs against one shared, read-only cost model.
type Runner struct {
	cm   *editdist.CostModel
	opts Options
	log  *slog.Logger
}

// NewRunner returns a Runner. A nil cm means editdist.DefaultCostModel().
func NewRunner(cm *editdist.CostModel, opts Options) *Runner {
	if cm == nil {
		cm = editdist.DefaultCostModel()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	return &Runner{cm: cm, opts: opts, log: log}
}

// Run processes pairs and returns results in input order. It stops handing
// out work when ctx is cancelled and then returns ctx.Err() with the partial
// results gathered so far.
func (r *Runner) Run(ctx context.Context, pairs []Pair) ([]Result, error) {
	results := make([]Result, len(pairs))
	if len(pairs) == 0 {
		return results, nil
	}

	workers := min(r.opts.Workers, len(pairs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	start := time.Now()

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.runOne(i, pairs[i])
			}
		}()
	}

	var err error
feed:
	for i := range pairs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	r.log.Info("batch finished",
		"pairs", len(pairs),
		"failed", failed,
		"workers", workers,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	if err != nil {
		r.log.Warn("batch cancelled", "error", err)
	}

	return results, err
}

// runOne computes a single pair with its own derived random stream.
func (r *Runner) runOne(index int, p Pair) Result {
	res := Result{Pair: p}
	if !r.opts.Align {
		res.Distance, res.Err = editdist.Distance(p.Source, p.Target, r.cm)
	} else {
		res.Distance, res.Ops, res.AlignedSource, res.AlignedTarget, res.Err = r.align(index, p)
	}

	if res.Err != nil {
		r.log.Warn("pair failed", "id", p.ID, "line", p.Line, "error", res.Err)
		return res
	}
	r.log.Debug("pair done", "id", p.ID, "distance", res.Distance, "len_source", len(p.Source), "len_target", len(p.Target))

	return res
}

// align runs Build → Reconstruct → Align and reports the matrix distance.
func (r *Runner) align(index int, p Pair) (float64, []editdist.Op, []string, []string, error) {
	m, err := editdist.Build(p.Source, p.Target, r.cm)
	if err != nil {
		return 0, nil, nil, nil, err
	}
	ops, err := editdist.Reconstruct(p.Source, p.Target, m, r.cm, editdist.DeriveRand(r.opts.Seed, uint64(index)))
	if err != nil {
		return 0, nil, nil, nil, err
	}
	al, err := editdist.Align(p.Source, p.Target, ops, editdist.Padding)
	if err != nil {
		return 0, nil, nil, nil, err
	}

	return m.Distance(), al.Ops, al.Source, al.Target, nil
}
