package layout

import (
	"go.uber.org/zap"

	"github.com/structlens/structlens/typeexpr"
)

// MaxTypeSize caps computed sizes at 1 TiB. Array sizing that would
// exceed it clamps here instead of wrapping or failing.
const MaxTypeSize = int64(1) << 40

// Sizer resolves type expressions to size and alignment for one
// architecture, looking named types up in one registry. Stateless per
// call; construct freely.
type Sizer struct {
	reg  *Registry
	arch Arch
}

func NewSizer(reg *Registry, arch Arch) *Sizer {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Sizer{reg: reg, arch: arch}
}

// Resolve maps expr to its size and alignment. It never fails: unknown
// or unparseable expressions resolve to a pointer-sized placeholder, and
// cyclic named references are cut at the point of recurrence.
func (s *Sizer) Resolve(expr typeexpr.Expr) TypeSizeInfo {
	return s.resolve(expr, nil)
}

// resolve carries the resolution path: the named types on the active
// call stack. The path travels by value so concurrent resolutions never
// share cycle-detection state.
func (s *Sizer) resolve(expr typeexpr.Expr, path []string) TypeSizeInfo {
	pw := s.arch.PointerWidth()

	switch expr.Kind {
	case typeexpr.KindBool, typeexpr.KindInt8, typeexpr.KindUint8:
		return TypeSizeInfo{Size: 1, Align: 1}
	case typeexpr.KindInt16, typeexpr.KindUint16:
		return TypeSizeInfo{Size: 2, Align: 2}
	case typeexpr.KindInt32, typeexpr.KindUint32, typeexpr.KindFloat32:
		return TypeSizeInfo{Size: 4, Align: 4}
	case typeexpr.KindInt64, typeexpr.KindUint64, typeexpr.KindFloat64:
		return TypeSizeInfo{Size: 8, Align: 8}
	case typeexpr.KindComplex64:
		return TypeSizeInfo{Size: 8, Align: 4}
	case typeexpr.KindComplex128:
		return TypeSizeInfo{Size: 16, Align: 8}
	case typeexpr.KindInt, typeexpr.KindUint, typeexpr.KindUintptr,
		typeexpr.KindPointer, typeexpr.KindSlice, typeexpr.KindMap,
		typeexpr.KindChan, typeexpr.KindFunc:
		return TypeSizeInfo{Size: pw, Align: pw}
	case typeexpr.KindString, typeexpr.KindInterface:
		// Two-word descriptor: data pointer plus length or itab.
		return TypeSizeInfo{Size: 2 * pw, Align: pw}
	case typeexpr.KindArray:
		return s.resolveArray(expr, path)
	case typeexpr.KindNamed:
		return s.resolveNamed(expr, path)
	default:
		Logger().Debug("unknown type expression, using pointer-sized fallback",
			zap.String("expr", expr.Src))
		return TypeSizeInfo{Size: pw, Align: pw}
	}
}

func (s *Sizer) resolveArray(expr typeexpr.Expr, path []string) TypeSizeInfo {
	if expr.Elem == nil {
		pw := s.arch.PointerWidth()
		return TypeSizeInfo{Size: pw, Align: pw}
	}

	elem := s.resolve(*expr.Elem, path)
	align := elem.Align
	if align < 1 {
		align = 1
	}
	if expr.Len == 0 {
		return TypeSizeInfo{Size: 0, Align: align}
	}

	size, ok := mulClamped(expr.Len, elem.Size)
	if !ok {
		Logger().Debug("array size clamped",
			zap.String("expr", expr.Src),
			zap.Int64("count", expr.Len),
			zap.Int64("elemSize", elem.Size))
	}
	return TypeSizeInfo{Size: size, Align: align}
}

func (s *Sizer) resolveNamed(expr typeexpr.Expr, path []string) TypeSizeInfo {
	pw := s.arch.PointerWidth()

	for _, seen := range path {
		if seen == expr.Name {
			// Cycle on the active path: cut here. The same name reached
			// from an unrelated path still resolves fully.
			Logger().Debug("cyclic definition cut",
				zap.String("name", expr.Name),
				zap.Strings("path", path))
			return TypeSizeInfo{Size: pw, Align: pw}
		}
	}

	def, ok := s.reg.Get(expr.Name)
	if !ok {
		Logger().Debug("named type not registered, using pointer-sized fallback",
			zap.String("name", expr.Name))
		return TypeSizeInfo{Size: pw, Align: pw}
	}

	lay := s.layoutFields(def.Name, def.Fields, append(path, expr.Name))
	return TypeSizeInfo{Size: lay.TotalSize, Align: lay.Align}
}

func alignTo(offset, align int64) int64 {
	if align <= 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// mulClamped multiplies two non-negative sizes, clamping the product to
// MaxTypeSize. The bool reports whether the product fit unclamped.
func mulClamped(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > MaxTypeSize/b {
		return MaxTypeSize, false
	}
	return a * b, true
}
