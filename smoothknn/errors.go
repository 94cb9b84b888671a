// SPDX-License-Identifier: MIT
package smoothknn

import "errors"

// ErrNilInput is returned when Calibrate is given a nil distance matrix.
var ErrNilInput = errors.New("smoothknn: dists must not be nil")
