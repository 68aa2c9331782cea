package rotations

import (
	"errors"
	"fmt"
)

// ErrDegenerateAxis is matched (through errors.Is) by every *DegenerateAxisError.
var ErrDegenerateAxis = errors.New("rotation axis has zero length")

// DegenerateAxisError is returned when an axis-angle rotation is given an axis too short to normalize.
// It's the only error the converter returns.
type DegenerateAxisError struct {
	Axis Vector // The offending axis, as given
}

func (err *DegenerateAxisError) Error() string {
	return fmt.Sprintf("invalid axis %s: %s", err.Axis, ErrDegenerateAxis)
}

func (err *DegenerateAxisError) Is(target error) bool {
	return target == ErrDegenerateAxis
}
