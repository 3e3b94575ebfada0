// SPDX-License-Identifier: MIT

// Package builder provides reusable "functional-options"-style constructors
// of row-stochastic transition matrices. The fixtures are deterministic
// (or seeded) so tests, examples and the CLI can reproduce the same chains.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the minimum-weight floor.
//   - Constructors (Constructor implementations):
//     – Cycle(n):            deterministic rotation i → i+1 (mod n), period n.
//     – Complete(n):         every entry 1/n.
//     – RandomWalk(n, p):    birth–death chain on a path, reflecting ends.
//     – Random(n):           dense random rows (uniform + floor, normalized).
//     – RandomSparse(n, p):  Bernoulli(p) support per entry plus a self-loop.
//     – RandomSymmetric(n, k): average of k random permutations and their
//     transposes; symmetric and doubly stochastic.
//   - Transforms:
//     – Lazy(c, alpha):      alpha·I + (1−alpha)·T, removes periodicity.
//
// Guarantees:
//
//   - Every constructor returns a matrix whose rows sum to 1 up to rounding.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping the package sentinels for invalid
//     build parameters.
//
// Complexity: every constructor is O(n²) time and space (dense output).
package builder
