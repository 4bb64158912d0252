// Package layout computes byte-exact in-memory layouts of struct types.
//
// Given an ordered field list and a target architecture, the package
// produces per-field offsets, alignment, inter-field padding, total
// size, and cache-line occupancy, and can propose a field permutation
// that minimizes wasted padding.
//
// # Layout Rules
//
//   - Fixed-width primitives: size equals alignment (uint8=1, uint32=4,
//     uint64=8), the same on every architecture.
//   - Machine-word scalars (int, uintptr), pointers, slices, maps,
//     channels and funcs: one pointer width.
//   - Strings and interfaces: two pointer widths, pointer-aligned.
//   - Arrays: count times element size, element alignment, clamped at
//     MaxTypeSize.
//   - Named types: looked up in the Registry and laid out recursively;
//     cycles on the active resolution path are cut to one pointer width.
//
// # Degradation Policy
//
// Nothing here returns an error. Unknown expressions, unregistered
// names, cycles and oversized arrays all resolve to documented fallback
// values, so the engine always produces a best-effort layout. The
// computed result does not tag which fields used a fallback; a
// presentation layer that needs that signal has to infer it.
//
// # Concurrency
//
// Every operation is a pure synchronous computation. A Registry is
// request-scoped and not safe for sharing; give each concurrent
// analysis its own.
package layout
