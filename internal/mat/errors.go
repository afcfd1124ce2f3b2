package mat

import "errors"

// ErrDimensionMismatch is returned when operand shapes are incompatible.
// It is always raised before any element of an output buffer is written.
var ErrDimensionMismatch = errors.New("dimension mismatch")
