package isoforest_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/isoforest"
	"github.com/hupe1980/isoforest/dataset"
)

// Example demonstrates growing a forest and scoring an outlier.
func Example() {
	// One numeric attribute, eight observations; the last one is far
	// outside the rest.
	data, err := dataset.NewMatrix(
		[][]float64{{1.0, 1.2, 0.9, 1.1, 1.0, 0.8, 1.3, 42.0}},
		nil,
	)
	if err != nil {
		log.Fatal(err)
	}

	forest, err := isoforest.New(data, 8, 100, 4711)
	if err != nil {
		log.Fatal(err)
	}

	forest.Grow()

	outlier, _ := forest.AnomalyScore(7)
	typical, _ := forest.AnomalyScore(0)

	fmt.Println(forest.Len(), outlier > typical)
	// Output: 100 true
}

// Example_concurrent demonstrates concurrent growth with a fixed worker
// count.
func Example_concurrent() {
	data, err := dataset.NewMatrix(
		[][]float64{{1.0, 1.2, 0.9, 1.1, 1.0, 0.8, 1.3, 42.0}},
		[][]string{{"a", "a", "b", "a", "b", "a", "b", "zzz"}},
	)
	if err != nil {
		log.Fatal(err)
	}

	forest, err := isoforest.New(data, 8, 100, 4711)
	if err != nil {
		log.Fatal(err)
	}

	if err := forest.GrowParallel(context.Background(), 4); err != nil {
		log.Fatal(err)
	}

	scores, err := forest.AnomalyScores(context.Background(), []int{0, 7})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(forest.Len(), scores[1] > scores[0])
	// Output: 100 true
}
