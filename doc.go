// Package bcsd compresses charge-stability diagrams (CSDs) into their
// binary skeleton, the bCSD: the ordered list of grid coordinates that lie
// on the transition manifold.
//
// What is a bCSD?
//
//	A CSD is an n-dimensional grid of measured (or simulated) currents over
//	gate voltages. Transitions form thin, connected, possibly cyclic and
//	branching lines or surfaces; everything else is flat background. The
//	bCSD keeps only the transition cells, found without scanning the grid:
//		• sample a random batch to learn an on/off threshold
//		• flood from every "on" sample along "on" Chebyshev neighbors
//
// Packages:
//
//	coord/     — Coordinate and Shape, row-major linear index
//	grid/      — Accessor interface, in-memory Dense grid, savetxt loader
//	neighbor/  — Chebyshev distance-1 neighbor enumeration
//	threshold/ — immutable min/max midpoint classifier
//	sampling/  — batch size estimator and random sampler
//	frontier/  — claim-once work queue (Unseen → Queued → Visited)
//	flood/     — the Engine: sampling, seeding and the flood
//	synth/     — synthetic diagonal and hyperplane CSDs
//
// Quick ASCII example (5×5 diagonal, flood seeded at the center):
//
//	■ · · · ·      visit order
//	· ■ · · ·      (2,2) → (1,1) → (3,3) → (0,0) → (4,4)
//	· · ■ · ·
//	· · · ■ ·
//	· · · · ■
//
// Runnable demos live in examples/.
//
//	go get github.com/katalvlaran/bcsd
package bcsd
