package sweep

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/treebuild/tree"
	"go.lepak.sg/treebuild/tree/binary"
	"go.uber.org/goleak"
)

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := Config{
		Sizes:   []int{0, 1, 7, 100},
		Trials:  5,
		Seed:    42,
		Workers: 3,
		Shape:   ShapeRandom,
	}

	results, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 20)

	for i, r := range results {
		assert.Equal(t, cfg.Sizes[i/cfg.Trials], r.Size, "i=%d", i)
		assert.Equal(t, i%cfg.Trials, r.Trial, "i=%d", i)
		assert.Equal(t, tree.OptimalHeight(r.Size), r.Balanced.Height, "i=%d", i)
		assert.GreaterOrEqual(t, r.Original.Height, r.Balanced.Height, "i=%d", i)
		assert.GreaterOrEqual(t, r.Random.Height, r.Balanced.Height, "i=%d", i)
		if r.Size >= 7 {
			assert.InDelta(t, 0.0, r.Balanced.Balance, 1e-9, "i=%d", i)
		}
	}

	again, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, results[len(results)-1], again[len(again)-1], "sweep is not repeatable")
}

func TestRun_Sorted(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := Config{
		Sizes:   []int{7, 50},
		Trials:  2,
		Seed:    1,
		Workers: 1,
		Shape:   ShapeSorted,
	}

	results, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, r := range results {
		assert.Equal(t, r.Size, r.Original.Height)
		assert.InDelta(t, 1.0, r.Original.Balance, 1e-9)
		assert.Equal(t, tree.OptimalHeight(r.Size), r.Balanced.Height)
	}
}

func TestRun_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	cfg.Workers = 1

	results, err := Run(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestRunJobs_StopsOnFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := DefaultConfig()
	cfg.Trials = 20
	js := jobs(cfg)

	var calls int32
	results, err := runJobs(context.Background(), js, 1, func(j job) (Result, error) {
		atomic.AddInt32(&calls, 1)
		if j.trial == 0 {
			return Result{}, fmt.Errorf("%w: tampered", ErrInvariant)
		}
		return Result{Size: j.size, Trial: j.trial}, nil
	})

	assert.ErrorIs(t, err, ErrInvariant)
	assert.Nil(t, results)
	// the job already waiting on the semaphore may still get to run
	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}

func TestRunJobs_FailureBeatsCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	js := jobs(DefaultConfig())
	_, err := runJobs(ctx, js, 2, func(j job) (Result, error) {
		cancel()
		return Result{}, ErrInvariant
	})

	assert.ErrorIs(t, err, ErrInvariant)
}

func TestVerify(t *testing.T) {
	j := job{size: 7, seed: 3}

	tr := binary.BuildSorted(7)
	keys := tr.Keys()

	// a chain has the right keys but not the optimal height
	assert.NoError(t, verify(j, "random", keys, tr, false))
	err := verify(j, "balanced", keys, tr, true)
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "height 7, want 3")

	tr.RebuildBalanced()
	assert.NoError(t, verify(j, "balanced", keys, tr, true))

	tampered := append(keys[:6:6], 99)
	err = verify(j, "random", tampered, tr, false)
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "random rebuild changed keys")

	err = verify(j, "balanced", keys[:3], tr, true)
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 0

	_, err := Run(context.Background(), cfg)
	assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Size: 7, Original: Measure{Height: 5}, Random: Measure{Height: 4}, Balanced: Measure{Height: 3}},
		{Size: 7, Original: Measure{Height: 4}, Random: Measure{Height: 6}, Balanced: Measure{Height: 3}},
		{Size: 3, Original: Measure{Height: 3}, Random: Measure{Height: 2}, Balanced: Measure{Height: 2}},
	}

	assert.Equal(t, []Summary{
		{
			Size:          7,
			Trials:        2,
			OptimalHeight: 3,
			Original:      4.5,
			Random:        5,
			Balanced:      3,
			MaxRandom:     6,
		},
		{
			Size:          3,
			Trials:        1,
			OptimalHeight: 2,
			Original:      3,
			Random:        2,
			Balanced:      2,
			MaxRandom:     2,
		},
	}, Summarize(results))

	assert.Nil(t, Summarize(nil))
}
