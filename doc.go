// Package isoforest provides an embedded Isolation Forest for Go.
//
// Isolation Forest is an unsupervised anomaly-detection model: it grows an
// ensemble of randomized binary partition trees over a dataset and scores
// each observation by how quickly random recursive partitioning isolates it.
// Observations that need few splits to isolate are anomalous; observations
// that need many are typical.
//
// # Quick Start
//
//	data, _ := dataset.NewMatrix(
//	    [][]float64{{1.1, 1.2, 1.0, 9.7}}, // numeric attributes x observations
//	    [][]string{{"a", "a", "b", "zz"}}, // text attributes x observations
//	)
//
//	forest, _ := isoforest.New(data, 4, 100, 4711)
//	forest.Grow()
//
//	score, _ := forest.AnomalyScore(3) // close to 1: anomalous
//
// # Mixed Attributes
//
// Numeric and text attributes share one unified index space, so random
// attribute selection picks either kind with equal probability. Numeric
// comparisons treat NaN as smaller than every value; text comparisons order
// by length first, then lexicographically.
//
// # Concurrency
//
// Sequential growth via Grow is bit-reproducible from the seed. Concurrent
// growth splits a fixed quota of trees per worker:
//
//	_ = forest.GrowParallel(ctx, 4)
//
// or hands out explicit background tasks:
//
//	task := forest.GrowAsync(50)
//	task.Wait()
//
// Each worker draws from its own generator derived from the base seed, so
// concurrent growth is race-free; reproducibility then depends on the worker
// count. Scoring while grow tasks are outstanding is rejected with
// ErrGrowInProgress. Once growth has finished, scoring is a read-only walk
// and is safe to parallelize; AnomalyScores does so for batches.
package isoforest
