package layout

// Calculate lays fields out in declared order for arch, resolving named
// references through reg. It is a pure function of its inputs and never
// fails; see Sizer.Resolve for the degradation policy on individual
// fields.
func Calculate(name string, fields []FieldDescriptor, reg *Registry, arch Arch) StructLayout {
	return NewSizer(reg, arch).layoutFields(name, fields, nil)
}

func (s *Sizer) layoutFields(name string, fields []FieldDescriptor, path []string) StructLayout {
	out := StructLayout{Name: name, Align: 1}
	if len(fields) == 0 {
		return out
	}

	out.Fields = make([]FieldLayout, 0, len(fields))
	offset := int64(0)
	maxAlign := int64(1)

	for _, f := range fields {
		info := s.resolve(f.Type, path)

		aligned := alignTo(offset, info.Align)
		if n := len(out.Fields); n > 0 {
			// Padding bytes sit before this field, but the contract
			// attributes them to the previous field's PaddingAfter.
			out.Fields[n-1].PaddingAfter = aligned - offset
		}

		out.Fields = append(out.Fields, FieldLayout{
			Loc:    f.Loc,
			Name:   f.Name,
			Type:   f.Type,
			Offset: aligned,
			Size:   info.Size,
			Align:  info.Align,
		})

		offset = aligned + info.Size
		if info.Align > maxAlign {
			maxAlign = info.Align
		}
	}

	out.TotalSize = alignTo(offset, maxAlign)
	out.Align = maxAlign
	out.Fields[len(out.Fields)-1].PaddingAfter = out.TotalSize - offset

	for i := range out.Fields {
		out.TotalPadding += out.Fields[i].PaddingAfter
	}

	segmentCacheLines(&out)
	return out
}

// segmentCacheLines partitions [0, TotalSize) into fixed 64-byte windows
// and intersects every field's byte range with each window. Fields whose
// range spans more than one window are the struct's hot fields.
func segmentCacheLines(out *StructLayout) {
	if out.TotalSize == 0 {
		return
	}

	lines := (out.TotalSize + CacheLineSize - 1) / CacheLineSize
	out.CacheLines = make([]CacheLineSegment, 0, lines)

	for i := int64(0); i < lines; i++ {
		start := i * CacheLineSize
		end := start + CacheLineSize
		if end > out.TotalSize {
			end = out.TotalSize
		}

		seg := CacheLineSegment{Index: i, StartOffset: start, EndOffset: end}
		for fi := range out.Fields {
			f := &out.Fields[fi]
			lo, hi := f.Offset, f.Offset+f.Size
			if lo < start {
				lo = start
			}
			if hi > end {
				hi = end
			}
			if lo < hi {
				seg.BytesUsed += hi - lo
				seg.OverlappingFields = append(seg.OverlappingFields, f.Name)
			}
		}
		seg.BytesPadding = (end - start) - seg.BytesUsed
		out.CacheLines = append(out.CacheLines, seg)
	}

	for i := range out.Fields {
		f := &out.Fields[i]
		f.CacheLineStart = f.Offset / CacheLineSize
		f.CacheLineEnd = f.CacheLineStart
		if f.Size > 0 {
			f.CacheLineEnd = (f.Offset + f.Size - 1) / CacheLineSize
		}
		if f.CacheLineEnd > f.CacheLineStart {
			f.CrossesCacheLine = true
			out.HotFields = append(out.HotFields, f.Name)
		}
	}
	out.CacheLinesCrossed = len(out.HotFields)
}
