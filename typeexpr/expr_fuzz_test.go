package typeexpr

import "testing"

func FuzzParse(f *testing.F) {
	seeds := []string{
		"bool", "uint64", "string", "*Node", "[]byte", "[8]byte",
		"[999999999999999999999]byte", "map[string]int", "chan int",
		"func(int) error", "interface{}", "time.Time", "[", "[]", "[8",
		"***", "[8][8][8]uint64", "\x00\xff", "chan chan chan int",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		e := Parse(src)
		if e.Src != src {
			t.Fatalf("source text not preserved: %q -> %q", src, e.Src)
		}
		if int(e.Kind) >= len(kindNames) {
			t.Fatalf("kind out of range: %d", e.Kind)
		}
		if e.Kind == KindArray && e.Len < 0 {
			t.Fatalf("negative array length: %d", e.Len)
		}
	})
}
