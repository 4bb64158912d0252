// Package source is the declaration front-end: it extracts ordered
// (name, type expression, position) tuples from Go source files and
// hands them to the layout engine as StructDefinitions.
//
// The layout core never reads files or parses Go syntax, and this
// package never computes sizes. File-level parse
// failures are reported as structured errors; individual field types
// the engine cannot classify still degrade silently downstream.
package source
