// Package dataset defines the columnar dataset abstraction the forest is
// trained on.
//
// A dataset is two logically column-major matrices: a numeric matrix and a
// text matrix, both of shape attributes x observations. The tree builder and
// the scorer address cells through the Accessor interface only, so any
// in-memory or foreign-owned storage can back a forest.
package dataset

import (
	"fmt"
	"math"
)

// ErrRaggedMatrix is a named error type for attribute rows of unequal length.
type ErrRaggedMatrix struct {
	Attr     int // Offending attribute row
	Expected int // Expected number of observations
	Actual   int // Actual number of observations
}

// Error returns the error message for a ragged matrix.
func (e *ErrRaggedMatrix) Error() string {
	return fmt.Sprintf("ragged matrix: attribute %d has %d observations, expected %d", e.Attr, e.Actual, e.Expected)
}

// ErrObservationMismatch is a named error type for numeric/text matrices
// disagreeing on the observation count.
type ErrObservationMismatch struct {
	Numeric int // Observations in the numeric matrix
	Text    int // Observations in the text matrix
}

// Error returns the error message for an observation count mismatch.
func (e *ErrObservationMismatch) Error() string {
	return fmt.Sprintf("observation mismatch: numeric matrix has %d observations, text matrix has %d", e.Numeric, e.Text)
}

// Accessor provides column-major access to the training data.
//
// Attribute and observation indices are a caller contract: implementations
// may assume 0 <= attr < NumericAttrs()/TextAttrs() and
// 0 <= obs < Observations().
type Accessor interface {
	// Numeric returns the numeric cell (attr, obs). NaN is a valid value.
	Numeric(attr, obs int) float64

	// Text returns the text cell (attr, obs). Empty strings are valid.
	Text(attr, obs int) string

	// NumericAttrs returns the number of numeric attributes.
	NumericAttrs() int

	// TextAttrs returns the number of text attributes.
	TextAttrs() int

	// Observations returns the number of observations.
	Observations() int
}

// Compile-time check to ensure Matrix satisfies the Accessor interface.
var _ Accessor = (*Matrix)(nil)

// Matrix is an in-memory Accessor backed by row slices, one row per
// attribute. Either matrix may be nil when the dataset has no attributes of
// that type.
type Matrix struct {
	numeric [][]float64
	text    [][]string
	nObs    int
}

// NewMatrix validates the shape of the given matrices and wraps them in a
// Matrix. Every attribute row must have the same length, and the numeric and
// text matrices must agree on the observation count (an empty matrix agrees
// with any count).
func NewMatrix(numeric [][]float64, text [][]string) (*Matrix, error) {
	nObs := -1

	for attr, row := range numeric {
		if nObs < 0 {
			nObs = len(row)
			continue
		}
		if len(row) != nObs {
			return nil, &ErrRaggedMatrix{Attr: attr, Expected: nObs, Actual: len(row)}
		}
	}

	textObs := -1
	for attr, row := range text {
		if textObs < 0 {
			textObs = len(row)
			continue
		}
		if len(row) != textObs {
			return nil, &ErrRaggedMatrix{Attr: attr, Expected: textObs, Actual: len(row)}
		}
	}

	if nObs >= 0 && textObs >= 0 && nObs != textObs {
		return nil, &ErrObservationMismatch{Numeric: nObs, Text: textObs}
	}

	if nObs < 0 {
		nObs = textObs
	}
	if nObs < 0 {
		nObs = 0
	}

	return &Matrix{numeric: numeric, text: text, nObs: nObs}, nil
}

// Numeric implements Accessor.
func (m *Matrix) Numeric(attr, obs int) float64 {
	return m.numeric[attr][obs]
}

// Text implements Accessor.
func (m *Matrix) Text(attr, obs int) string {
	return m.text[attr][obs]
}

// NumericAttrs implements Accessor.
func (m *Matrix) NumericAttrs() int {
	return len(m.numeric)
}

// TextAttrs implements Accessor.
func (m *Matrix) TextAttrs() int {
	return len(m.text)
}

// Observations implements Accessor.
func (m *Matrix) Observations() int {
	return m.nObs
}

// HasNaN reports whether any numeric cell is NaN. Useful for hosts that want
// to log or reject datasets with missing values up front; the forest itself
// handles NaN with a defined ordering.
func (m *Matrix) HasNaN() bool {
	for _, row := range m.numeric {
		for _, v := range row {
			if math.IsNaN(v) {
				return true
			}
		}
	}
	return false
}
