// Package sweep measures how both rebuild strategies reshape many
// seeded trees. Trees are independent, so they are measured
// concurrently; each one is only ever touched by a single goroutine.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"go.lepak.sg/treebuild/tree/binary"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/semaphore"
)

var ErrInvariant = errors.New("rebuild broke a tree invariant")

// Measure is the shape of one tree at one point in time.
type Measure struct {
	Height  int     `yaml:"height"`
	Balance float64 `yaml:"balance"`
}

// Result is what happened to one tree.
type Result struct {
	Size     int     `yaml:"size"`
	Trial    int     `yaml:"trial"`
	Seed     int64   `yaml:"seed"`
	Original Measure `yaml:"original"`
	Random   Measure `yaml:"random"`
	Balanced Measure `yaml:"balanced"`
}

type job struct {
	size, trial int
	seed        int64
}

// jobs lists one job per (size, trial), in that order. Seeds are
// drawn here, before any work starts, so they do not depend on
// scheduling.
func jobs(cfg Config) []job {
	seedrd := rand.New(rand.NewSource(cfg.Seed))

	js := make([]job, 0, len(cfg.Sizes)*cfg.Trials)
	for _, size := range cfg.Sizes {
		for trial := 0; trial < cfg.Trials; trial++ {
			js = append(js, job{
				size:  size,
				trial: trial,
				seed:  seedrd.Int63(),
			})
		}
	}

	return js
}

// Run builds every tree described by cfg and measures it before and
// after each rebuild. At most cfg.Workers trees are worked on at once.
//
// Results come back in job order, sorted by size (as listed in cfg)
// then trial.
//
// Context cancellation: If ctx is canceled, Run stops starting new
// trees, waits for the ones in flight, then returns the context error.
// The first invariant violation stops the sweep the same way, and is
// returned instead of the context error.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return runJobs(ctx, jobs(cfg), cfg.Workers, func(j job) (Result, error) {
		return measure(j, cfg.Shape)
	})
}

func runJobs(ctx context.Context, js []job, workers int,
	f func(job) (Result, error)) ([]Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]Result, len(js))

	var (
		failOnce sync.Once
		failErr  error
	)

	sema := semaphore.NewWeighted(int64(workers))

	var err error
	for i, j := range js {
		// Acquire succeeds on a canceled ctx if a slot is free
		if err = ctx.Err(); err != nil {
			break
		}

		if err = sema.Acquire(ctx, 1); err != nil {
			// ctx was canceled
			break
		}

		go func(i int, j job) {
			defer sema.Release(1)

			r, err := f(j)
			if err != nil {
				failOnce.Do(func() {
					failErr = err
					cancel()
				})
				return
			}
			results[i] = r
		}(i, j)
	}

	// Wait for everyone still running. This must not be cut short by
	// ctx, since the workers write into results.
	_ = sema.Acquire(context.Background(), int64(workers))

	if failErr != nil {
		return nil, failErr
	}

	if err != nil {
		return nil, err
	}

	return results, nil
}

func build(size int, seed int64, shape string) *binary.Tree[int] {
	if shape == ShapeSorted {
		return binary.BuildSorted(size)
	}
	return binary.BuildRandom(size, seed)
}

func measureOf(tr *binary.Tree[int]) Measure {
	return Measure{
		Height:  tr.Height(),
		Balance: tr.Balance(),
	}
}

// verify checks tr still holds exactly keys after a rebuild, and when
// balanced is set, that it has the optimal height.
func verify(j job, stage string, keys []int, tr *binary.Tree[int], balanced bool) error {
	if !slices.Equal(keys, tr.Keys()) {
		return fmt.Errorf("%w: %s rebuild changed keys (size=%d seed=%d)",
			ErrInvariant, stage, j.size, j.seed)
	}

	if !balanced {
		return nil
	}

	if h, opt := tr.Height(), tr.OptimalHeight(); h != opt {
		return fmt.Errorf("%w: %s rebuild has height %d, want %d (size=%d seed=%d)",
			ErrInvariant, stage, h, opt, j.size, j.seed)
	}

	return nil
}

func measure(j job, shape string) (Result, error) {
	tr := build(j.size, j.seed, shape)
	keys := tr.Keys()

	r := Result{
		Size:     tr.Size(),
		Trial:    j.trial,
		Seed:     j.seed,
		Original: measureOf(tr),
	}

	// use a different stream from the one that shuffled the keys
	tr.RebuildRandom(rand.New(rand.NewSource(^j.seed)))
	if err := verify(j, "random", keys, tr, false); err != nil {
		return r, err
	}
	r.Random = measureOf(tr)

	tr.RebuildBalanced()
	if err := verify(j, "balanced", keys, tr, true); err != nil {
		return r, err
	}
	r.Balanced = measureOf(tr)

	return r, nil
}
