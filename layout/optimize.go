package layout

import "sort"

// Optimize proposes a field permutation that minimizes padding: a stable
// sort by alignment descending, then size descending, with ties keeping
// declaration order. The permuted layout is recomputed from scratch and
// the size delta reported.
//
// The ordering is optimal whenever every field's size is a multiple of
// its own alignment and alignments are powers of two, which covers
// primitive-dominated records. For fields of custom composite types,
// whose declared alignment may understate their internal packing needs,
// it is a heuristic, not a guaranteed global optimum.
//
// Running Optimize on its own output is idempotent: the second run
// reports the same ordering and zero additional savings.
func Optimize(lay StructLayout, reg *Registry, arch Arch) OptimizationResult {
	fields := make([]FieldDescriptor, len(lay.Fields))
	for i, f := range lay.Fields {
		fields[i] = FieldDescriptor{Loc: f.Loc, Name: f.Name, Type: f.Type}
	}

	res := OptimizationResult{
		Fields:        fields,
		OriginalSize:  lay.TotalSize,
		OptimizedSize: lay.TotalSize,
	}
	if len(fields) < 2 {
		return res
	}

	s := NewSizer(reg, arch)
	infos := make([]TypeSizeInfo, len(fields))
	for i := range fields {
		infos[i] = s.Resolve(fields[i].Type)
	}

	idx := make([]int, len(fields))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := infos[idx[i]], infos[idx[j]]
		if a.Align != b.Align {
			return a.Align > b.Align
		}
		return a.Size > b.Size
	})

	reordered := make([]FieldDescriptor, len(fields))
	for i, j := range idx {
		reordered[i] = fields[j]
	}

	opt := s.layoutFields(lay.Name, reordered, nil)
	res.Fields = reordered
	res.OptimizedSize = opt.TotalSize
	res.BytesSaved = lay.TotalSize - opt.TotalSize
	return res
}
