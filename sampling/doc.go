// Package sampling implements the unguided phase of bCSD discovery: sizing a
// random batch and drawing it from a grid.Accessor.
//
// What:
//
//   - EstimateBatchSize: floor(V·0.1^(D−1)) + floor(ln V) for a grid of
//     volume V and dimensionality D. This is a heuristic kept exactly as
//     calibrated; it is not a confidence bound.
//   - Sampler.Sample: draws B coordinates uniformly with replacement, reads
//     their values (optionally in parallel), collapses duplicates and returns
//     the samples together with the Threshold spanning them.
//
// Determinism:
//
//   - Coordinates are drawn sequentially from one RNG before any grid read,
//     so a fixed seed yields the same batch for every worker count.
//   - The min/max reduction and the mapping assembly happen after all reads
//     complete (a single merge barrier), before any classification.
//
// Errors:
//
//   - ErrBatchSize: batch < 1.
//   - ErrAccessorNil: nil grid accessor.
//   - ErrOptionViolation: invalid functional option.
//   - grid read errors and context cancellation are propagated unchanged.
package sampling
