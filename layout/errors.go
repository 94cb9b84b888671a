// SPDX-License-Identifier: MIT
package layout

import "errors"

var (
	// ErrNilEmbedding is returned when head or tail is nil.
	ErrNilEmbedding = errors.New("layout: head and tail embeddings must not be nil")
	// ErrLengthMismatch is returned when headIdx/tailIdx/epochsPerSample disagree in length.
	ErrLengthMismatch = errors.New("layout: headIdx, tailIdx and epochsPerSample must have equal length")
)
