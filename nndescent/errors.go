// SPDX-License-Identifier: MIT
package nndescent

import "errors"

// ErrEmptyData is returned when Descend is given zero rows.
var ErrEmptyData = errors.New("nndescent: data must have at least one row")
