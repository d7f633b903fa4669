package grid

import "errors"

var (
	// ErrDataLength indicates that the backing data does not match the shape volume.
	ErrDataLength = errors.New("grid: data length does not match shape volume")
	// ErrNaN indicates a NaN sample; classification thresholds are undefined on NaN.
	ErrNaN = errors.New("grid: NaN value")
	// ErrEmpty indicates text input without any data rows.
	ErrEmpty = errors.New("grid: input has no data rows")
	// ErrRagged indicates text rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
)
