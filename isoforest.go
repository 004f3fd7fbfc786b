package isoforest

import (
	"context"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/isoforest/dataset"
	"github.com/hupe1980/isoforest/itree"
	"github.com/hupe1980/isoforest/util"
)

// Forest is an ensemble of isolation trees over a fixed dataset.
//
// All parameters are immutable after construction. Trees are appended under
// a lock, so sequential and concurrent growth may be freely mixed; scoring
// is rejected while background grow tasks are outstanding.
type Forest struct {
	data       dataset.Accessor
	treeSize   int
	forestSize int
	maxHeight  int
	nObs       int

	builder *itree.Builder
	rng     *util.RNG // base generator: sequential growth and seed derivation

	mu    sync.Mutex
	trees []*itree.Tree

	taskSeq atomic.Int64 // allocates worker indices for derived generators
	pending atomic.Int64 // outstanding background grow tasks

	logger  *Logger
	metrics MetricsCollector
}

// New creates a Forest over the given dataset.
//
// treeSize is the sample size per tree and must be in [2, observations];
// a sample of one observation would leave the score denominator c(treeSize)
// at zero. forestSize is the number of trees to grow. seed makes sequential
// growth fully reproducible.
//
// Construction validates configuration and dataset shape but grows nothing.
func New(data dataset.Accessor, treeSize, forestSize int, seed int64, optFns ...Option) (*Forest, error) {
	o := applyOptions(optFns)

	nObs := data.Observations()

	if data.NumericAttrs()+data.TextAttrs() == 0 {
		return nil, ErrNoAttributes
	}
	if treeSize < 2 || treeSize > nObs {
		return nil, &ErrInvalidTreeSize{TreeSize: treeSize, Observations: nObs}
	}
	if forestSize < 1 {
		return nil, &ErrInvalidForestSize{ForestSize: forestSize}
	}

	maxHeight := itree.MaxHeight(treeSize)

	return &Forest{
		data:       data,
		treeSize:   treeSize,
		forestSize: forestSize,
		maxHeight:  maxHeight,
		nObs:       nObs,
		builder:    itree.NewBuilder(data, maxHeight),
		rng:        util.NewRNG(seed),
		trees:      make([]*itree.Tree, 0, forestSize),
		logger:     o.logger.WithSeed(seed),
		metrics:    o.metrics,
	}, nil
}

// TreeSize returns the sample size per tree.
func (f *Forest) TreeSize() int { return f.treeSize }

// ForestSize returns the configured number of trees.
func (f *Forest) ForestSize() int { return f.forestSize }

// MaxTreeHeight returns the growth height cap, ceil(log2(treeSize)).
func (f *Forest) MaxTreeHeight() int { return f.maxHeight }

// Seed returns the base random seed.
func (f *Forest) Seed() int64 { return f.rng.Seed() }

// NumericAttrs returns the number of numeric attributes in the dataset.
func (f *Forest) NumericAttrs() int { return f.data.NumericAttrs() }

// TextAttrs returns the number of text attributes in the dataset.
func (f *Forest) TextAttrs() int { return f.data.TextAttrs() }

// Observations returns the number of observations in the dataset.
func (f *Forest) Observations() int { return f.nObs }

// Len returns the number of trees grown so far.
func (f *Forest) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.trees)
}

// Grow builds forestSize trees sequentially on the calling goroutine.
//
// Every sample and every split is drawn from the base generator in a fixed
// order, so two forests with identical parameters and seed produce identical
// trees and identical scores.
func (f *Forest) Grow() {
	start := time.Now()

	f.growQuota(f.rng, f.forestSize)

	f.metrics.RecordGrow(f.forestSize, time.Since(start))
	f.logger.LogGrow(f.forestSize, time.Since(start))
}

// GrowTask is a handle for one in-flight background growth unit.
type GrowTask struct {
	done chan struct{}
}

// Wait blocks until the task has built its full quota of trees.
func (t *GrowTask) Wait() {
	<-t.done
}

// GrowAsync launches a background task that builds jobs trees and returns a
// handle to join it. Each task draws from its own independently seeded
// generator derived from the base seed and the task index, so concurrent
// tasks never share a generator stream. Sampling and tree construction run
// outside the lock; only the append is guarded.
//
// All outstanding tasks must be joined before scoring; AnomalyScore enforces
// this and returns ErrGrowInProgress otherwise.
func (f *Forest) GrowAsync(jobs int) *GrowTask {
	rng := f.rng.Derive(int(f.taskSeq.Add(1) - 1))

	f.pending.Add(1)

	task := &GrowTask{done: make(chan struct{})}

	go func() {
		defer close(task.done)
		defer f.pending.Add(-1)

		start := time.Now()
		f.growQuota(rng, jobs)
		f.metrics.RecordGrow(jobs, time.Since(start))
		f.logger.LogGrow(jobs, time.Since(start))
	}()

	return task
}

// GrowParallel splits forestSize trees across the given number of workers
// and joins them all before returning. The quota per worker is fixed up
// front (work splitting, not work stealing); any remainder is spread over
// the first workers.
//
// If workers <= 0, GOMAXPROCS workers are used. The context is consulted
// between trees: cancellation stops a worker early and the forest is left
// with fewer trees than configured.
func (f *Forest) GrowParallel(ctx context.Context, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > f.forestSize {
		workers = f.forestSize
	}

	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)

	quota := f.forestSize / workers
	remainder := f.forestSize % workers

	for w := 0; w < workers; w++ {
		jobs := quota
		if w < remainder {
			jobs++
		}

		rng := f.rng.Derive(int(f.taskSeq.Add(1) - 1))

		f.pending.Add(1)

		g.Go(func() error {
			defer f.pending.Add(-1)

			for i := 0; i < jobs; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				f.growOne(rng)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	f.metrics.RecordGrow(f.forestSize, time.Since(start))
	f.logger.LogGrow(f.forestSize, time.Since(start))

	return nil
}

func (f *Forest) growQuota(rng *util.RNG, jobs int) {
	for i := 0; i < jobs; i++ {
		f.growOne(rng)
	}
}

func (f *Forest) growOne(rng *util.RNG) {
	sample := rng.Sample(f.nObs, f.treeSize)
	tree := f.builder.Grow(rng, sample)

	f.mu.Lock()
	f.trees = append(f.trees, tree)
	f.mu.Unlock()
}

// AnomalyScore scores one observation:
//
//	score = 2^(-mean path length / c(treeSize))
//
// Scores near 1 indicate strong anomalies; scores near or below 0.5 indicate
// typical points. The walk is read-only, so concurrent scoring of
// independent observations is safe once growth has finished.
func (f *Forest) AnomalyScore(obs int) (float64, error) {
	start := time.Now()

	score, err := f.anomalyScore(obs)

	f.metrics.RecordScore(time.Since(start), err)
	f.logger.LogScore(obs, score, err)

	return score, err
}

func (f *Forest) anomalyScore(obs int) (float64, error) {
	if f.pending.Load() != 0 {
		return 0, ErrGrowInProgress
	}
	if obs < 0 || obs >= f.nObs {
		return 0, &ErrObservationOutOfRange{Index: obs, Observations: f.nObs}
	}

	f.mu.Lock()
	trees := f.trees
	f.mu.Unlock()

	if len(trees) == 0 {
		return 0, ErrEmptyForest
	}

	paths := make([]float64, len(trees))
	for i, tree := range trees {
		paths[i] = tree.PathLength(f.data, obs)
	}

	mean := stat.Mean(paths, nil)

	return math.Pow(2, -mean/itree.AveragePathLength(f.treeSize)), nil
}

// AnomalyScores scores a batch of observations in parallel, bounded by
// GOMAXPROCS workers. The result slice is index-aligned with obs.
func (f *Forest) AnomalyScores(ctx context.Context, obs []int) ([]float64, error) {
	scores := make([]float64, len(obs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, ob := range obs {
		i, ob := i, ob
		g.Go(func() error {
			score, err := f.AnomalyScore(ob)
			if err != nil {
				return err
			}
			scores[i] = score
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scores, nil
}
