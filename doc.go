// Package schur is your in-memory toolkit for partition combinatorics
// from the representation theory of the symmetric and general linear
// groups — Littlewood-Richardson coefficients, symmetric-group
// characters, and the Young-diagram primitives underneath them.
//
// 🚀 What is schur?
//
//	A small, exact, pure-computation library that brings together:
//		• Young-diagram primitives: a validated Partition type, containment,
//		  conjugation (duality), hook-length dimensions
//		• Littlewood-Richardson coefficients: pruned lattice-word enumeration
//		• Symmetric-group characters: the Murnaghan-Nakayama recursion with
//		  a memoizing, resettable, concurrency-safe Evaluator
//
// ✨ Why choose schur?
//
//   - Exact answers – integer results, hook-length dimensions in math/big
//   - Validated inputs – malformed partitions are sentinel errors, never
//     silent miscomputations
//   - Pure Go – no cgo, no hidden deps
//   - Memoization you control – per-Evaluator caches with Reset
//
// Everything is organized under three subpackages:
//
//	young/ — Partition type, Validate, Weight, Contains, Conjugate, Dimension
//	lr/    — Coefficient: the Littlewood-Richardson rule by backtracking search
//	mn/    — Character & Evaluator: the Murnaghan-Nakayama rule, memoized
//
// Quick ASCII example:
//
//	    ■ ■ ■        the diagram of the partition (3,2), whose
//	    ■ ■          irreducible representation of S_5 has dimension 5
//
// Dive into the per-package doc.go files for algorithm outlines,
// complexity notes, and error contracts.
//
//	go get github.com/katalvlaran/schur
package schur
