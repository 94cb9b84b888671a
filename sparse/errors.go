// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// sparse package. Algorithms return these sentinels and tests check them
// via errors.Is. Panics are reserved for programmer errors in private
// helpers, never for user-triggered conditions.
package sparse

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix argument was used where one is required.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrUnsortedCOO indicates a COO's invariant (row,col) sorted order was violated.
	ErrUnsortedCOO = errors.New("sparse: COO entries not sorted by (row, col)")

	// ErrDuplicateEntry indicates a duplicate (row, col) pair was found where the
	// COO invariant forbids duplicates.
	ErrDuplicateEntry = errors.New("sparse: duplicate (row, col) entry")

	// ErrLengthMismatch indicates that parallel slices (row/col/data, or
	// indptr/indices/data) have inconsistent lengths.
	ErrLengthMismatch = errors.New("sparse: parallel slice length mismatch")
)

// matrixErrorf wraps an underlying error with call-site context, mirroring
// the teacher's matrixErrorf/validatorErrorf wrapping convention.
func matrixErrorf(op string, err error) error {
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }
