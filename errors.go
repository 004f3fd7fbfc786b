package isoforest

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAttributes is returned when the dataset exposes neither numeric
	// nor text attributes, leaving nothing to split on.
	ErrNoAttributes = errors.New("dataset has no attributes")

	// ErrEmptyForest is returned when scoring is attempted before any tree
	// has been grown.
	ErrEmptyForest = errors.New("forest is empty: grow it before scoring")

	// ErrGrowInProgress is returned when scoring is attempted while
	// background grow tasks are still outstanding.
	ErrGrowInProgress = errors.New("grow in progress: wait for outstanding grow tasks before scoring")
)

// ErrInvalidTreeSize is a named error type for an invalid sample size.
type ErrInvalidTreeSize struct {
	TreeSize     int // Requested sample size per tree
	Observations int // Observations available in the dataset
}

// Error returns the error message for an invalid tree size.
func (e *ErrInvalidTreeSize) Error() string {
	return fmt.Sprintf("invalid tree size %d: must be in [2, %d]", e.TreeSize, e.Observations)
}

// ErrInvalidForestSize is a named error type for an invalid tree count.
type ErrInvalidForestSize struct {
	ForestSize int // Requested number of trees
}

// Error returns the error message for an invalid forest size.
func (e *ErrInvalidForestSize) Error() string {
	return fmt.Sprintf("invalid forest size %d: must be positive", e.ForestSize)
}

// ErrObservationOutOfRange is a named error type for a scoring index outside
// the dataset.
type ErrObservationOutOfRange struct {
	Index        int // Requested observation index
	Observations int // Observations in the dataset
}

// Error returns the error message for an out-of-range observation.
func (e *ErrObservationOutOfRange) Error() string {
	return fmt.Sprintf("observation %d out of range [0, %d)", e.Index, e.Observations)
}
