// Package grid provides the read-only field accessor consumed by the flood
// engine and a dense, in-memory n-dimensional implementation of it.
//
// What:
//
//   - Accessor: Shape() and Sample(coordinate). Implementations must allow any
//     number of concurrent readers.
//   - Dense: row-major []float64 backing store, built from raw data
//     (NewDense), a gonum matrix (FromMatrix) or numpy.savetxt text
//     (LoadText / LoadFile).
//
// Errors:
//
//   - coord.ErrOutOfBounds / coord.ErrDimensionMismatch from Sample and Set.
//   - ErrDataLength: data length differs from the shape volume.
//   - ErrNaN: a NaN value was supplied.
//   - ErrEmpty, ErrRagged: malformed text input.
package grid
