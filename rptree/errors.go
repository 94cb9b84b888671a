// SPDX-License-Identifier: MIT
package rptree

import "errors"

var (
	// ErrEmptyData is returned when BuildForest is given zero rows.
	ErrEmptyData = errors.New("rptree: data must have at least one row")
	// ErrTooFewTrees is returned when nTrees is not positive.
	ErrTooFewTrees = errors.New("rptree: nTrees must be > 0")
	// ErrNilRNG is returned when the caller supplies a nil source of randomness.
	ErrNilRNG = errors.New("rptree: rng must not be nil")
)
