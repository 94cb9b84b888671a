// SPDX-License-Identifier: MIT
package fuzzyset

import "errors"

var (
	// ErrLengthMismatch is returned when knnIdx and knnDist disagree in length.
	ErrLengthMismatch = errors.New("fuzzyset: knnIdx and knnDist must have equal length")
	// ErrInvalidShape is returned when rows/cols/K are inconsistent with the input slices.
	ErrInvalidShape = errors.New("fuzzyset: rows/cols do not divide the input slices evenly")
)
