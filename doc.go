// Package structlens computes byte-exact memory layouts of Go structs.
//
// Given struct declarations and a target architecture, it reports
// per-field offsets, alignment, padding and cache-line occupancy, and
// proposes field orderings that reclaim wasted padding.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	structlens/          Root package with the Run orchestrator
//	├── layout/          Core engine: sizes, offsets, padding, cache lines, reordering
//	├── typeexpr/        Type expressions as a closed tagged variant
//	├── source/          go/parser front-end extracting declarations from files
//	├── report/          Text, Markdown, JSON and CSV renderings
//	├── errors/          Structured error types for the non-core layers
//	└── cmd/structlens/  CLI with an interactive TUI mode
//
// # Quick Start
//
// Analyze a file and print every layout:
//
//	defs, err := source.File("models.go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	run := structlens.NewRun(layout.Amd64)
//	run.RegisterAll(defs)
//
//	for _, lay := range run.LayoutAll() {
//	    fmt.Printf("%s: %d bytes, %d padding\n", lay.Name, lay.TotalSize, lay.TotalPadding)
//	}
//
// # Two-Pass Resolution
//
// Registration records every declared type before any size is computed,
// so mutually referencing types resolve regardless of declaration
// order. Cyclic references are cut to one pointer width at the point of
// recurrence on the active resolution path.
//
// # Degradation Policy
//
// The engine has no error channel: unknown type expressions, cycles,
// empty definitions and oversized arrays resolve to documented fallback
// values and the engine always returns a best-effort layout. See the
// layout package for the exact rules.
//
// # Thread Safety
//
// A Run and its Registry are request-scoped and not safe for sharing.
// Concurrent analyses each construct their own Run; the engine itself
// holds no shared mutable state.
package structlens
