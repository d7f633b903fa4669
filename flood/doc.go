// Package flood compresses a charge-stability diagram into its bCSD: the
// ordered list of grid coordinates on the transition manifold.
//
// What:
//
//   - Engine.Run estimates a sampling batch, draws it, derives the
//     classification Threshold, seeds a frontier with every "on" sample and
//     drains it. Each popped coordinate is appended to the bCSD and its
//     Chebyshev distance-1 neighbors are read from the grid, classified, and
//     claimed when "on".
//   - Engine.Flood runs the drain phase alone from caller-chosen seeds.
//
// Why:
//
//   - The manifold is sparse: the flood touches only the manifold and its
//     one-cell rim instead of scanning every cell of the grid.
//
// Concurrency:
//
//   - WithWorkers(1) (the default) is strictly sequential and FIFO, so a
//     fixed seed reproduces the exact bCSD sequence.
//   - WithWorkers(n>1) drains with n goroutines. Claims go through the
//     frontier state machine, so every cell is appended at most once and the
//     resulting set equals the sequential one; only the order may differ.
//   - The grid accessor must tolerate concurrent readers.
//
// Complexity:
//
//   - Sampling: O(B·D) for batch B.
//   - Flood: O(M·3^D·D) grid reads and work for a manifold of M cells.
//
// Errors:
//
//   - ErrGridNil, ErrOptionViolation at construction.
//   - neighbor.ErrNegativeDistance / neighbor.ErrDistanceNotImplemented for
//     unsupported distances.
//   - grid read errors (coord.ErrOutOfBounds, ...), hook errors and context
//     cancellation abort the run; no partial bCSD is returned.
package flood
