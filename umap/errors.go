// SPDX-License-Identifier: MIT
package umap

import "errors"

var (
	// ErrConfig wraps every configuration error raised from Validate.
	ErrConfig = errors.New("umap: invalid configuration")
	// ErrShapeMismatch is returned when X and y disagree in row count, or
	// Transform is fed a feature count that does not match training data.
	ErrShapeMismatch = errors.New("umap: shape mismatch")
	// ErrUnsupportedTransform is returned when Transform is called on a
	// Model fitted from a single sample or a precomputed metric.
	ErrUnsupportedTransform = errors.New("umap: transform is not supported for this fit")
	// ErrEmptyInput is returned when Fit is given zero rows.
	ErrEmptyInput = errors.New("umap: X must have at least one row")
)
