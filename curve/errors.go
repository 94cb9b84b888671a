// SPDX-License-Identifier: MIT
package curve

import "errors"

var (
	// ErrInvalidSpread is returned when spread falls outside [0.5, 1.5].
	ErrInvalidSpread = errors.New("curve: spread must satisfy 0.5 <= spread <= 1.5")
	// ErrInvalidMinDist is returned when min_dist is not in (0, spread).
	ErrInvalidMinDist = errors.New("curve: min_dist must satisfy 0 < min_dist < spread")
)
