package layout

import (
	"testing"

	"github.com/structlens/structlens/typeexpr"
)

func fieldList(pairs ...string) []FieldDescriptor {
	if len(pairs)%2 != 0 {
		panic("fieldList wants name/type pairs")
	}
	out := make([]FieldDescriptor, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, FieldDescriptor{
			Name: pairs[i],
			Type: typeexpr.Parse(pairs[i+1]),
		})
	}
	return out
}

// checkInvariants verifies the structural properties every computed
// layout must satisfy, regardless of input.
func checkInvariants(t *testing.T, lay StructLayout) {
	t.Helper()

	var paddingSum int64
	for i, f := range lay.Fields {
		if f.Align > 0 && f.Offset%f.Align != 0 {
			t.Errorf("field %s: offset %d not aligned to %d", f.Name, f.Offset, f.Align)
		}
		if i+1 < len(lay.Fields) {
			next := lay.Fields[i+1]
			if f.Offset+f.Size > next.Offset {
				t.Errorf("fields %s and %s overlap", f.Name, next.Name)
			}
			if got := next.Offset - (f.Offset + f.Size); got != f.PaddingAfter {
				t.Errorf("field %s: paddingAfter %d, gap to next is %d", f.Name, f.PaddingAfter, got)
			}
		}
		paddingSum += f.PaddingAfter
	}

	if paddingSum != lay.TotalPadding {
		t.Errorf("sum(paddingAfter) = %d, totalPadding = %d", paddingSum, lay.TotalPadding)
	}
	if lay.Align > 0 && lay.TotalSize%lay.Align != 0 {
		t.Errorf("totalSize %d not a multiple of alignment %d", lay.TotalSize, lay.Align)
	}
	if n := len(lay.Fields); n > 0 {
		last := lay.Fields[n-1]
		if lay.TotalSize != last.Offset+last.Size+last.PaddingAfter {
			t.Errorf("totalSize %d != last end %d + final padding %d",
				lay.TotalSize, last.Offset+last.Size, last.PaddingAfter)
		}
	}

	var lineBytes int64
	for i, seg := range lay.CacheLines {
		if seg.Index != int64(i) {
			t.Errorf("segment %d: index %d", i, seg.Index)
		}
		if seg.BytesUsed+seg.BytesPadding != seg.EndOffset-seg.StartOffset {
			t.Errorf("segment %d: used %d + padding %d != window %d",
				i, seg.BytesUsed, seg.BytesPadding, seg.EndOffset-seg.StartOffset)
		}
		lineBytes += seg.EndOffset - seg.StartOffset
	}
	if len(lay.CacheLines) > 0 && lineBytes != lay.TotalSize {
		t.Errorf("segments cover %d bytes, totalSize %d", lineBytes, lay.TotalSize)
	}
}

func TestCalculateEmpty(t *testing.T) {
	lay := Calculate("Empty", nil, NewRegistry(), Amd64)
	if lay.TotalSize != 0 || lay.Align != 1 || lay.TotalPadding != 0 {
		t.Errorf("got size %d align %d padding %d, want 0/1/0",
			lay.TotalSize, lay.Align, lay.TotalPadding)
	}
	if len(lay.Fields) != 0 || len(lay.CacheLines) != 0 {
		t.Errorf("empty layout has %d fields, %d segments", len(lay.Fields), len(lay.CacheLines))
	}
}

// The classic demonstration struct: bool/uint64/string/uint8/float64 on
// amd64 wastes 14 of 48 bytes.
func TestCalculateUserProfile(t *testing.T) {
	fields := fieldList(
		"Active", "bool",
		"UserID", "uint64",
		"Name", "string",
		"Age", "uint8",
		"Balance", "float64",
	)
	lay := Calculate("UserProfile", fields, NewRegistry(), Amd64)
	checkInvariants(t, lay)

	wantOffsets := []int64{0, 8, 16, 32, 40}
	for i, f := range lay.Fields {
		if f.Offset != wantOffsets[i] {
			t.Errorf("field %s: offset %d, want %d", f.Name, f.Offset, wantOffsets[i])
		}
	}
	if lay.TotalSize != 48 {
		t.Errorf("totalSize %d, want 48", lay.TotalSize)
	}
	if lay.TotalPadding != 14 {
		t.Errorf("totalPadding %d, want 14", lay.TotalPadding)
	}
	if lay.Align != 8 {
		t.Errorf("align %d, want 8", lay.Align)
	}
}

func TestCalculateTrailingPaddingAttribution(t *testing.T) {
	fields := fieldList("A", "bool", "B", "uint64")
	lay := Calculate("T", fields, NewRegistry(), Amd64)
	checkInvariants(t, lay)

	// The 7 padding bytes sit physically before B but belong to A.
	if lay.Fields[0].PaddingAfter != 7 {
		t.Errorf("A.paddingAfter = %d, want 7", lay.Fields[0].PaddingAfter)
	}
	if lay.Fields[1].PaddingAfter != 0 {
		t.Errorf("B.paddingAfter = %d, want 0", lay.Fields[1].PaddingAfter)
	}

	fields = fieldList("B", "uint64", "A", "bool")
	lay = Calculate("T", fields, NewRegistry(), Amd64)
	checkInvariants(t, lay)
	if lay.Fields[1].PaddingAfter != 7 {
		t.Errorf("final padding on last field = %d, want 7", lay.Fields[1].PaddingAfter)
	}
	if lay.TotalSize != 16 {
		t.Errorf("totalSize %d, want 16", lay.TotalSize)
	}
}

func TestCalculatePointerWidth386(t *testing.T) {
	fields := fieldList("P", "*Node", "S", "string", "N", "int")
	lay := Calculate("T", fields, NewRegistry(), I386)
	checkInvariants(t, lay)

	if lay.Fields[0].Size != 4 {
		t.Errorf("pointer size %d on 386, want 4", lay.Fields[0].Size)
	}
	if lay.Fields[1].Size != 8 || lay.Fields[1].Align != 4 {
		t.Errorf("string on 386: size %d align %d, want 8/4", lay.Fields[1].Size, lay.Fields[1].Align)
	}
	if lay.TotalSize != 16 {
		t.Errorf("totalSize %d, want 16", lay.TotalSize)
	}
}

func TestCalculateNestedNamed(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Inner", fieldList("A", "uint64", "B", "bool"))

	lay := Calculate("Outer", fieldList("In", "Inner", "C", "bool"), reg, Amd64)
	checkInvariants(t, lay)

	// Inner is 16 bytes, align 8; Outer is 16+1 rounded to 24.
	if lay.Fields[0].Size != 16 || lay.Fields[0].Align != 8 {
		t.Errorf("Inner field: size %d align %d, want 16/8", lay.Fields[0].Size, lay.Fields[0].Align)
	}
	if lay.TotalSize != 24 {
		t.Errorf("totalSize %d, want 24", lay.TotalSize)
	}
}

func TestCacheLineCrossing(t *testing.T) {
	fields := fieldList("Header", "[60]byte", "Stamp", "uint64")
	lay := Calculate("T", fields, NewRegistry(), Amd64)
	checkInvariants(t, lay)

	// uint64 aligns to 8, so Stamp lands at offset 64 exactly and sits
	// wholly inside line 1.
	if lay.Fields[1].Offset != 64 {
		t.Fatalf("Stamp offset %d", lay.Fields[1].Offset)
	}
	if lay.Fields[1].CrossesCacheLine {
		t.Error("field starting exactly on a line boundary does not cross it")
	}
}

func TestCacheLineCrosser(t *testing.T) {
	// A 60-byte field then an 8-byte field that must straddle the
	// 64-byte boundary: [60]byte has alignment 1, so a following
	// 8-aligned field lands at 64. Force the crossing with a 1-aligned
	// 8-byte window instead.
	fields := fieldList("Header", "[60]byte", "Tail", "[8]byte")
	lay := Calculate("T", fields, NewRegistry(), Amd64)
	checkInvariants(t, lay)

	tail := lay.Fields[1]
	if tail.Offset != 60 {
		t.Fatalf("Tail offset %d, want 60", tail.Offset)
	}
	if !tail.CrossesCacheLine {
		t.Error("Tail spans bytes 60..68 and must cross the line boundary")
	}
	if tail.CacheLineStart != 0 || tail.CacheLineEnd != 1 {
		t.Errorf("Tail lines %d..%d, want 0..1", tail.CacheLineStart, tail.CacheLineEnd)
	}
	if len(lay.HotFields) != 1 || lay.HotFields[0] != "Tail" {
		t.Errorf("hotFields = %v", lay.HotFields)
	}
	if lay.CacheLinesCrossed != 1 {
		t.Errorf("cacheLinesCrossed = %d", lay.CacheLinesCrossed)
	}

	if len(lay.CacheLines) != 2 {
		t.Fatalf("segments: %d, want 2", len(lay.CacheLines))
	}
	first := lay.CacheLines[0]
	if first.BytesUsed != 64 || first.BytesPadding != 0 {
		t.Errorf("line 0: used %d padding %d", first.BytesUsed, first.BytesPadding)
	}
	second := lay.CacheLines[1]
	if second.BytesUsed != 4 {
		t.Errorf("line 1: used %d, want 4", second.BytesUsed)
	}
}

func TestCacheLineSegmentFields(t *testing.T) {
	fields := fieldList("A", "[100]byte", "B", "uint32")
	lay := Calculate("T", fields, NewRegistry(), Amd64)
	checkInvariants(t, lay)

	if len(lay.CacheLines) != 2 {
		t.Fatalf("segments: %d", len(lay.CacheLines))
	}
	for i, want := range [][]string{{"A"}, {"A", "B"}} {
		got := lay.CacheLines[i].OverlappingFields
		if len(got) != len(want) {
			t.Errorf("line %d fields %v, want %v", i, got, want)
			continue
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("line %d fields %v, want %v", i, got, want)
			}
		}
	}
}

func TestCalculateZeroSizeField(t *testing.T) {
	fields := fieldList("Z", "[0]uint64", "A", "uint8")
	lay := Calculate("T", fields, NewRegistry(), Amd64)
	checkInvariants(t, lay)

	if lay.Fields[0].Size != 0 {
		t.Errorf("zero array size %d", lay.Fields[0].Size)
	}
	if lay.Fields[0].Align != 8 {
		t.Errorf("zero array keeps element alignment, got %d", lay.Fields[0].Align)
	}
	if lay.TotalSize != 8 {
		t.Errorf("totalSize %d, want 8", lay.TotalSize)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Inner", fieldList("X", "uint32"))
	fields := fieldList("A", "Inner", "B", "string", "C", "[12]byte")

	first := Calculate("T", fields, reg, Arm64)
	for i := 0; i < 5; i++ {
		again := Calculate("T", fields, reg, Arm64)
		if again.TotalSize != first.TotalSize || again.TotalPadding != first.TotalPadding {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}
