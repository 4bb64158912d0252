package typeexpr

type Kind uint8

const (
	KindUnknown Kind = iota
	KindBool
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindInt
	KindUint
	KindUintptr
	KindString
	KindPointer
	KindSlice
	KindArray
	KindMap
	KindChan
	KindFunc
	KindInterface
	KindNamed
)

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindBool:       "bool",
	KindInt8:       "int8",
	KindUint8:      "uint8",
	KindInt16:      "int16",
	KindUint16:     "uint16",
	KindInt32:      "int32",
	KindUint32:     "uint32",
	KindInt64:      "int64",
	KindUint64:     "uint64",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindComplex64:  "complex64",
	KindComplex128: "complex128",
	KindInt:        "int",
	KindUint:       "uint",
	KindUintptr:    "uintptr",
	KindString:     "string",
	KindPointer:    "pointer",
	KindSlice:      "slice",
	KindArray:      "array",
	KindMap:        "map",
	KindChan:       "chan",
	KindFunc:       "func",
	KindInterface:  "interface",
	KindNamed:      "named",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsFixedWidth reports whether k has the same size and alignment on every
// architecture.
func (k Kind) IsFixedWidth() bool {
	return k >= KindBool && k <= KindComplex128
}

// IsWordSized reports whether k occupies exactly one machine word.
func (k Kind) IsWordSized() bool {
	switch k {
	case KindInt, KindUint, KindUintptr, KindPointer, KindSlice, KindMap, KindChan, KindFunc:
		return true
	default:
		return false
	}
}
