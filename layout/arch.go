package layout

// Arch selects the target machine profile. Profiles differ only in
// pointer width; fixed-width primitives keep the same size and alignment
// everywhere.
type Arch uint8

const (
	Amd64 Arch = iota
	Arm64
	I386
)

// CacheLineSize is the fixed window used for cache-line segmentation.
const CacheLineSize = 64

var archNames = [...]string{
	Amd64: "amd64",
	Arm64: "arm64",
	I386:  "386",
}

func (a Arch) String() string {
	if int(a) < len(archNames) {
		return archNames[a]
	}
	return "amd64"
}

// PointerWidth returns the machine word size in bytes.
func (a Arch) PointerWidth() int64 {
	if a == I386 {
		return 4
	}
	return 8
}

// Arches returns every supported profile, in a stable order.
func Arches() []Arch {
	return []Arch{Amd64, Arm64, I386}
}

// ParseArch maps a GOARCH-style name to an Arch. Unrecognized names
// report false and default to Amd64.
func ParseArch(s string) (Arch, bool) {
	switch s {
	case "amd64", "x86_64":
		return Amd64, true
	case "arm64", "aarch64":
		return Arm64, true
	case "386", "i386", "x86":
		return I386, true
	}
	return Amd64, false
}
