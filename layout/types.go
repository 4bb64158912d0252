package layout

import (
	"github.com/structlens/structlens/typeexpr"
)

// TypeSizeInfo is the resolved footprint of one type expression.
type TypeSizeInfo struct {
	Size  int64 // bytes, never negative
	Align int64 // bytes, power of two
}

// FieldDescriptor is a declared struct field as handed over by a
// front-end. Loc is an opaque source locator: the engine never inspects
// it, only carries it through to the matching FieldLayout.
type FieldDescriptor struct {
	Loc  any
	Name string
	Type typeexpr.Expr
}

// StructDefinition is the unit stored in a Registry: a named type with
// its ordered field list. Read-only once registered.
type StructDefinition struct {
	Name   string
	Fields []FieldDescriptor
}

// FieldLayout is the computed placement of one field within its struct.
type FieldLayout struct {
	Loc              any
	Name             string
	Type             typeexpr.Expr
	Offset           int64
	Size             int64
	Align            int64
	PaddingAfter     int64 // gap to the next field, or the final padding for the last field
	CacheLineStart   int64
	CacheLineEnd     int64
	CrossesCacheLine bool
}

// CacheLineSegment describes one fixed 64-byte window of a struct's
// footprint. Segments exactly partition [0, TotalSize).
type CacheLineSegment struct {
	OverlappingFields []string
	Index             int64
	StartOffset       int64
	EndOffset         int64
	BytesUsed         int64
	BytesPadding      int64
}

// StructLayout is the complete computed layout of one struct. It is
// immutable once produced; changed inputs mean a fresh computation.
type StructLayout struct {
	Name       string
	Fields     []FieldLayout
	CacheLines []CacheLineSegment

	// HotFields names every field whose byte range spans a cache-line
	// boundary; CacheLinesCrossed is their count.
	HotFields         []string
	CacheLinesCrossed int

	TotalSize    int64
	TotalPadding int64
	Align        int64
}

// OptimizationResult reports a proposed field permutation and the
// padding it would reclaim.
type OptimizationResult struct {
	Fields        []FieldDescriptor // proposed declaration order
	OriginalSize  int64
	OptimizedSize int64
	BytesSaved    int64
}
