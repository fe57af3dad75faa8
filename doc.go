// Package rref is an exact-arithmetic linear-system solver: it reduces an
// augmented matrix to Reduced Row Echelon Form, records every elementary row
// operation as a replayable step, and classifies the system as having a
// unique, infinite, or no solution.
//
// 🚀 What is rref?
//
//	A small, deterministic library that brings together:
//		• Exact rationals: big-integer fractions, always in lowest terms
//		• Dense matrices: rectangular augmented systems with strict validation
//		• Gauss–Jordan elimination: first-non-zero pivoting, no float drift
//		• Step log: every swap/scale/replace captured with a full snapshot
//		• Classification: Unique / Infinite / Inconsistent with parametric solutions
//
// ✨ Why choose rref?
//
//   - Exact – no floating point anywhere on the hot path, no epsilons
//   - Deterministic – fixed scan order, identical output for identical input
//   - Replayable – the recorded steps reproduce the final matrix bit-for-bit
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	rational/ — immutable exact fraction type: parsing, arithmetic, display
//	matrix/   — dense rational matrices, ingestion and row kernels
//	solver/   — elimination engine, step recorder and solution classifier
//
// Quick ASCII example:
//
//	⎡ 2  1 -1 │  8 ⎤            ⎡ 1 0 0 │  2 ⎤
//	⎢-3 -1  2 │-11 ⎥  ──RREF──▶ ⎢ 0 1 0 │  3 ⎥   x1=2, x2=3, x3=-1
//	⎣-2  1  2 │ -3 ⎦            ⎣ 0 0 1 │ -1 ⎦
//
// Dive into the per-package docs and example tests for full usage patterns.
//
//	go get github.com/katalvlaran/rref/solver
package rref
