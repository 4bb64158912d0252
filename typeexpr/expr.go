package typeexpr

import (
	"strconv"
	"strings"
)

// Expr is a parsed type expression. The zero value is the unknown
// expression, which the layout engine resolves to a pointer-sized
// placeholder.
type Expr struct {
	Elem *Expr  // element type for pointer, slice and array expressions
	Name string // referenced type name for named expressions
	Src  string // original source text, preserved verbatim
	Len  int64  // element count for array expressions
	Kind Kind
}

func (e Expr) String() string {
	if e.Src != "" {
		return e.Src
	}
	return e.Kind.String()
}

var primitives = map[string]Kind{
	"bool":       KindBool,
	"int8":       KindInt8,
	"uint8":      KindUint8,
	"byte":       KindUint8,
	"int16":      KindInt16,
	"uint16":     KindUint16,
	"int32":      KindInt32,
	"rune":       KindInt32,
	"uint32":     KindUint32,
	"int64":      KindInt64,
	"uint64":     KindUint64,
	"float32":    KindFloat32,
	"float64":    KindFloat64,
	"complex64":  KindComplex64,
	"complex128": KindComplex128,
	"int":        KindInt,
	"uint":       KindUint,
	"uintptr":    KindUintptr,
	"string":     KindString,
}

// Parse maps a Go type expression string to its Expr variant. It never
// fails: expressions it cannot classify come back as KindUnknown with the
// source text preserved, and the caller's fallback policy decides what an
// unknown expression weighs.
func Parse(src string) Expr {
	e := parse(strings.TrimSpace(src))
	e.Src = src
	return e
}

func parse(s string) Expr {
	if s == "" {
		return Expr{Kind: KindUnknown}
	}

	if k, ok := primitives[s]; ok {
		return Expr{Kind: k}
	}

	switch s {
	case "any", "error":
		return Expr{Kind: KindInterface}
	case "unsafe.Pointer":
		return Expr{Kind: KindPointer}
	}
	if s == "interface{}" || s == "interface {}" || strings.HasPrefix(s, "interface{") || strings.HasPrefix(s, "interface {") {
		return Expr{Kind: KindInterface}
	}

	switch {
	case strings.HasPrefix(s, "*"):
		elem := parse(strings.TrimSpace(s[1:]))
		return Expr{Kind: KindPointer, Elem: &elem}

	case strings.HasPrefix(s, "[]"):
		elem := parse(strings.TrimSpace(s[2:]))
		return Expr{Kind: KindSlice, Elem: &elem}

	case strings.HasPrefix(s, "map["):
		return Expr{Kind: KindMap}

	case strings.HasPrefix(s, "<-chan ") || strings.HasPrefix(s, "chan<- ") || strings.HasPrefix(s, "chan "):
		return Expr{Kind: KindChan}

	case s == "func" || strings.HasPrefix(s, "func(") || strings.HasPrefix(s, "func ("):
		return Expr{Kind: KindFunc}

	case strings.HasPrefix(s, "["):
		return parseArray(s)
	}

	if isTypeName(s) {
		return Expr{Kind: KindNamed, Name: s}
	}
	return Expr{Kind: KindUnknown}
}

// parseArray handles "[N]T". A count that is not a plain non-negative
// integer literal (a named constant, len(...) and so on) makes the whole
// expression unknown rather than guessing.
func parseArray(s string) Expr {
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return Expr{Kind: KindUnknown}
	}
	count := strings.TrimSpace(s[1:end])
	n, err := strconv.ParseInt(strings.ReplaceAll(count, "_", ""), 0, 64)
	if err != nil || n < 0 {
		return Expr{Kind: KindUnknown}
	}
	rest := strings.TrimSpace(s[end+1:])
	if rest == "" {
		return Expr{Kind: KindUnknown}
	}
	elem := parse(rest)
	return Expr{Kind: KindArray, Len: n, Elem: &elem}
}

// isTypeName accepts identifiers and qualified identifiers (pkg.Type),
// including generic instantiations such as List[int].
func isTypeName(s string) bool {
	depth := 0
	for i, r := range s {
		switch {
		case r == '.':
			if i == 0 {
				return false
			}
		case r == '[':
			depth++
		case r == ']':
			depth--
			if depth < 0 {
				return false
			}
		case r == ',' || r == ' ':
			if depth == 0 {
				return false
			}
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '_' || r == '*':
			if r == '*' && depth == 0 {
				return false
			}
		case !isLetter(r):
			return false
		}
	}
	return depth == 0 && s != ""
}

func isLetter(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r > 0x7f
}
