package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/structlens/structlens/layout"
)

// Entry pairs one computed layout with its optional optimization.
type Entry struct {
	Opt    *layout.OptimizationResult
	Layout layout.StructLayout
}

// Options controls text rendering. The zero value renders plain text
// with no padding highlighting.
type Options struct {
	Arch             layout.Arch
	PaddingThreshold int64 // highlight fields with at least this much padding; 0 disables
	Styled           bool  // apply terminal colors
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	savingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Text renders a human-readable layout report.
func Text(entries []Entry, opts Options) string {
	var b strings.Builder

	style := func(s lipgloss.Style, text string) string {
		if opts.Styled {
			return s.Render(text)
		}
		return text
	}

	fmt.Fprintf(&b, "%s\n\n", style(dimStyle, "arch: "+opts.Arch.String()))

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		lay := e.Layout

		fmt.Fprintf(&b, "%s\n", style(titleStyle, "struct "+lay.Name))
		fmt.Fprintf(&b, "  %-16s %-24s %8s %6s %6s %8s\n",
			"FIELD", "TYPE", "OFFSET", "SIZE", "ALIGN", "PADDING")

		for _, f := range lay.Fields {
			line := fmt.Sprintf("  %-16s %-24s %8d %6d %6d %8d",
				f.Name, f.Type.String(), f.Offset, f.Size, f.Align, f.PaddingAfter)
			if opts.PaddingThreshold > 0 && f.PaddingAfter >= opts.PaddingThreshold {
				line = style(warnStyle, line+"  [!]")
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "  total %d B, padding %d B (%s waste), align %d\n",
			lay.TotalSize, lay.TotalPadding, wastePercent(lay), lay.Align)

		if len(lay.HotFields) > 0 {
			fmt.Fprintf(&b, "  %s\n", style(warnStyle,
				fmt.Sprintf("crosses cache line: %s", strings.Join(lay.HotFields, ", "))))
		}

		if e.Opt != nil && e.Opt.BytesSaved > 0 {
			names := make([]string, len(e.Opt.Fields))
			for j, f := range e.Opt.Fields {
				names[j] = f.Name
			}
			fmt.Fprintf(&b, "  %s\n", style(savingStyle,
				fmt.Sprintf("reorder to %s: %d B -> %d B, saves %d B",
					strings.Join(names, ", "), e.Opt.OriginalSize, e.Opt.OptimizedSize, e.Opt.BytesSaved)))
		}
	}

	return b.String()
}

func wastePercent(lay layout.StructLayout) string {
	if lay.TotalSize == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(lay.TotalPadding)/float64(lay.TotalSize)*100)
}

// Markdown renders the report as Markdown tables.
func Markdown(entries []Entry, arch layout.Arch) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Struct layout report (%s)\n", arch)

	for _, e := range entries {
		lay := e.Layout
		fmt.Fprintf(&b, "\n## %s\n\n", lay.Name)
		b.WriteString("| Field | Type | Offset | Size | Align | Padding |\n")
		b.WriteString("|---|---|---:|---:|---:|---:|\n")
		for _, f := range lay.Fields {
			fmt.Fprintf(&b, "| %s | `%s` | %d | %d | %d | %d |\n",
				f.Name, f.Type.String(), f.Offset, f.Size, f.Align, f.PaddingAfter)
		}
		fmt.Fprintf(&b, "\nTotal %d bytes, %d padding (%s waste), alignment %d.\n",
			lay.TotalSize, lay.TotalPadding, wastePercent(lay), lay.Align)

		if len(lay.HotFields) > 0 {
			fmt.Fprintf(&b, "\nFields crossing a cache line: %s.\n", strings.Join(lay.HotFields, ", "))
		}
		if e.Opt != nil && e.Opt.BytesSaved > 0 {
			names := make([]string, len(e.Opt.Fields))
			for j, f := range e.Opt.Fields {
				names[j] = f.Name
			}
			fmt.Fprintf(&b, "\nSuggested order %s saves %d bytes (%d -> %d).\n",
				strings.Join(names, ", "), e.Opt.BytesSaved, e.Opt.OriginalSize, e.Opt.OptimizedSize)
		}
	}

	return b.String()
}
