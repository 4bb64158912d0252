// Package errors provides structured error types for the structlens tool.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: the source file, a struct/field path, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindSyntax).
//		File("models.go").
//		Path("User", "Name").
//		Detail("unbalanced braces").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IOFailure(errors.PhaseScan, path, cause)
//	err := errors.NotFound(errors.PhaseRun, "struct Config")
//
// All errors implement the standard error interface and support errors.Is/As.
//
// The layout core never returns these: unknown types, cycles and
// overflows degrade silently there.
package errors
