// Package testutil provides testing utilities for isoforest.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating synthetic datasets with a known
// cluster structure and planted outliers, so scoring behavior can be
// asserted against ground truth.
//
// # Synthetic Datasets
//
//	gen := testutil.NewGenerator(seed)
//	num, outliers := gen.Cluster(1000, 5.0, 0.5, 10)
//	data, _ := dataset.NewMatrix([][]float64{num}, nil)
package testutil
