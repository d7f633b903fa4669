// Package coord defines the n-dimensional Coordinate and Shape types shared by
// every bcsd package, together with the row-major linear index used as a
// compact key for grid cells.
//
// What:
//
//   - Shape is an ordered list of positive extents, one per dimension.
//   - Coordinate is an ordered list of non-negative integers; it is valid for a
//     Shape when 0 ≤ c[i] < shape[i] for every dimension i.
//   - Index maps a Coordinate to its row-major offset (last dimension varies
//     fastest, the numpy C-order layout); Coordinate maps it back.
//
// Why:
//
//   - Coordinates are slices and cannot be map keys. The linear index is a
//     plain int, so visited sets and state tables stay O(1) per lookup.
//
// Complexity:
//
//   - Validate, Volume: O(D).
//   - Index, Coordinate, Contains: O(D).
//
// Errors:
//
//   - ErrEmptyShape: a shape with zero dimensions.
//   - ErrBadShape: an extent ≤ 0.
//   - ErrVolumeOverflow: the product of extents does not fit in an int.
//   - ErrDimensionMismatch: coordinate length differs from shape length.
//   - ErrOutOfBounds: coordinate outside the shape.
package coord
