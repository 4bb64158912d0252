package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/structlens/structlens/errors"
	"github.com/structlens/structlens/layout"
)

type jsonReport struct {
	Arch    string       `json:"arch"`
	Structs []jsonStruct `json:"structs"`
}

type jsonStruct struct {
	Name              string            `json:"name"`
	Fields            []jsonField       `json:"fields"`
	CacheLines        []jsonCacheLine   `json:"cache_lines,omitempty"`
	HotFields         []string          `json:"hot_fields,omitempty"`
	Optimization      *jsonOptimization `json:"optimization,omitempty"`
	TotalSize         int64             `json:"total_size"`
	TotalPadding      int64             `json:"total_padding"`
	Alignment         int64             `json:"alignment"`
	CacheLinesCrossed int               `json:"cache_lines_crossed"`
}

type jsonField struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Offset           int64  `json:"offset"`
	Size             int64  `json:"size"`
	Alignment        int64  `json:"alignment"`
	PaddingAfter     int64  `json:"padding_after"`
	CacheLineStart   int64  `json:"cache_line_start"`
	CacheLineEnd     int64  `json:"cache_line_end"`
	CrossesCacheLine bool   `json:"crosses_cache_line"`
}

type jsonCacheLine struct {
	Fields       []string `json:"fields,omitempty"`
	Index        int64    `json:"index"`
	StartOffset  int64    `json:"start_offset"`
	EndOffset    int64    `json:"end_offset"`
	BytesUsed    int64    `json:"bytes_used"`
	BytesPadding int64    `json:"bytes_padding"`
}

type jsonOptimization struct {
	FieldOrder    []string `json:"field_order"`
	OriginalSize  int64    `json:"original_size"`
	OptimizedSize int64    `json:"optimized_size"`
	BytesSaved    int64    `json:"bytes_saved"`
}

// JSON encodes the report for machine consumers.
func JSON(entries []Entry, arch layout.Arch) ([]byte, error) {
	doc := jsonReport{Arch: arch.String(), Structs: make([]jsonStruct, 0, len(entries))}

	for _, e := range entries {
		lay := e.Layout
		js := jsonStruct{
			Name:              lay.Name,
			Fields:            make([]jsonField, 0, len(lay.Fields)),
			HotFields:         lay.HotFields,
			TotalSize:         lay.TotalSize,
			TotalPadding:      lay.TotalPadding,
			Alignment:         lay.Align,
			CacheLinesCrossed: lay.CacheLinesCrossed,
		}
		for _, f := range lay.Fields {
			js.Fields = append(js.Fields, jsonField{
				Name:             f.Name,
				Type:             f.Type.String(),
				Offset:           f.Offset,
				Size:             f.Size,
				Alignment:        f.Align,
				PaddingAfter:     f.PaddingAfter,
				CacheLineStart:   f.CacheLineStart,
				CacheLineEnd:     f.CacheLineEnd,
				CrossesCacheLine: f.CrossesCacheLine,
			})
		}
		for _, seg := range lay.CacheLines {
			js.CacheLines = append(js.CacheLines, jsonCacheLine{
				Fields:       seg.OverlappingFields,
				Index:        seg.Index,
				StartOffset:  seg.StartOffset,
				EndOffset:    seg.EndOffset,
				BytesUsed:    seg.BytesUsed,
				BytesPadding: seg.BytesPadding,
			})
		}
		if e.Opt != nil {
			names := make([]string, len(e.Opt.Fields))
			for j, f := range e.Opt.Fields {
				names[j] = f.Name
			}
			js.Optimization = &jsonOptimization{
				FieldOrder:    names,
				OriginalSize:  e.Opt.OriginalSize,
				OptimizedSize: e.Opt.OptimizedSize,
				BytesSaved:    e.Opt.BytesSaved,
			}
		}
		doc.Structs = append(doc.Structs, js)
	}

	out, err := sonic.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseReport, errors.KindInvalidInput, err, "encoding JSON report")
	}
	return out, nil
}

// CSV encodes one row per field, suitable for spreadsheets.
func CSV(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"struct", "field", "type", "offset", "size", "align",
		"padding_after", "cache_line_start", "cache_line_end", "crosses_cache_line",
	}
	if err := w.Write(header); err != nil {
		return nil, errors.Wrap(errors.PhaseReport, errors.KindIOFailure, err, "writing CSV header")
	}

	for _, e := range entries {
		for _, f := range e.Layout.Fields {
			row := []string{
				e.Layout.Name,
				f.Name,
				f.Type.String(),
				strconv.FormatInt(f.Offset, 10),
				strconv.FormatInt(f.Size, 10),
				strconv.FormatInt(f.Align, 10),
				strconv.FormatInt(f.PaddingAfter, 10),
				strconv.FormatInt(f.CacheLineStart, 10),
				strconv.FormatInt(f.CacheLineEnd, 10),
				strconv.FormatBool(f.CrossesCacheLine),
			}
			if err := w.Write(row); err != nil {
				return nil, errors.Wrap(errors.PhaseReport, errors.KindIOFailure, err, "writing CSV row")
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(errors.PhaseReport, errors.KindIOFailure, err, "flushing CSV")
	}
	return buf.Bytes(), nil
}
