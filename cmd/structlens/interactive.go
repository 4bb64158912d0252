package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/structlens/structlens"
	"github.com/structlens/structlens/layout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	structStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	paddingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	savingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectStruct modelState = iota
	stateViewLayout
)

type interactiveModel struct {
	run       *structlens.Run
	defs      []layout.StructDefinition
	names     []string // filtered view of the registry
	filter    textinput.Model
	arch      layout.Arch
	selected  int
	showOpt   bool
	filtering bool
	state     modelState
}

func newInteractiveModel(defs []layout.StructDefinition, arch layout.Arch) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filter structs"
	ti.Prompt = "/ "
	ti.Width = 30

	m := &interactiveModel{
		defs:   defs,
		filter: ti,
		arch:   arch,
		state:  stateSelectStruct,
	}
	m.rebuild()
	return m
}

// rebuild constructs a fresh run for the current architecture and
// reapplies the name filter.
func (m *interactiveModel) rebuild() {
	m.run = structlens.NewRun(m.arch)
	m.run.RegisterAll(m.defs)

	query := strings.ToLower(m.filter.Value())
	m.names = m.names[:0]
	for _, name := range m.run.Registry().Names() {
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			m.names = append(m.names, name)
		}
	}
	if m.selected >= len(m.names) {
		m.selected = 0
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch key.String() {
		case "enter", "esc":
			m.filtering = false
			m.filter.Blur()
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.rebuild()
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.state == stateSelectStruct && m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.state == stateSelectStruct && m.selected < len(m.names)-1 {
			m.selected++
		}

	case "enter":
		if m.state == stateSelectStruct && len(m.names) > 0 {
			m.state = stateViewLayout
		}

	case "esc":
		if m.state == stateViewLayout {
			m.state = stateSelectStruct
			m.showOpt = false
		}

	case "o":
		if m.state == stateViewLayout {
			m.showOpt = !m.showOpt
		}

	case "a":
		all := layout.Arches()
		for i, a := range all {
			if a == m.arch {
				m.arch = all[(i+1)%len(all)]
				break
			}
		}
		m.rebuild()

	case "/":
		if m.state == stateSelectStruct {
			m.filtering = true
			m.filter.Focus()
		}
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("structlens"))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  arch: %s", m.arch)))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectStruct:
		m.viewList(&b)
	case stateViewLayout:
		m.viewLayout(&b)
	}

	return b.String()
}

func (m *interactiveModel) viewList(b *strings.Builder) {
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.names) == 0 {
		b.WriteString(helpStyle.Render("no structs found"))
		b.WriteString("\n")
	}

	for i, name := range m.names {
		lay, ok := m.run.Layout(name)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%-24s %5d B  padding %d B", name, lay.TotalSize, lay.TotalPadding)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(structStyle.Render("  " + line))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: view  /: filter  a: arch  q: quit"))
	b.WriteString("\n")
}

func (m *interactiveModel) viewLayout(b *strings.Builder) {
	name := m.names[m.selected]
	lay, ok := m.run.Layout(name)
	if !ok {
		b.WriteString(paddingStyle.Render("struct vanished: " + name))
		return
	}

	fields := lay.Fields
	label := "declared order"
	if m.showOpt {
		if res, ok := m.run.Optimize(name); ok {
			opt := layout.Calculate(name, res.Fields, m.run.Registry(), m.arch)
			fields = opt.Fields
			label = fmt.Sprintf("optimized order (saves %d B)", res.BytesSaved)
			lay = opt
		}
	}

	fmt.Fprintf(b, "%s  %s\n\n", structStyle.Render("struct "+name), helpStyle.Render(label))
	fmt.Fprintf(b, "  %-16s %-20s %8s %6s %8s\n", "FIELD", "TYPE", "OFFSET", "SIZE", "PADDING")

	for _, f := range fields {
		line := fmt.Sprintf("  %-16s %-20s %8d %6d %8d",
			f.Name, typeStyle.Render(f.Type.String()), f.Offset, f.Size, f.PaddingAfter)
		if f.PaddingAfter > 0 {
			line += paddingStyle.Render("  [!]")
		}
		if f.CrossesCacheLine {
			line += paddingStyle.Render("  crosses cache line")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	fmt.Fprintf(b, "\n  total %d B, padding %d B, align %d, cache lines %d\n",
		lay.TotalSize, lay.TotalPadding, lay.Align, len(lay.CacheLines))

	if !m.showOpt {
		if res, ok := m.run.Optimize(name); ok && res.BytesSaved > 0 {
			fmt.Fprintf(b, "  %s\n", savingStyle.Render(
				fmt.Sprintf("reordering saves %d B (%d -> %d)", res.BytesSaved, res.OriginalSize, res.OptimizedSize)))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("o: toggle optimized  a: arch  esc: back  q: quit"))
	b.WriteString("\n")
}

func runInteractive(defs []layout.StructDefinition, arch layout.Arch) error {
	p := tea.NewProgram(newInteractiveModel(defs, arch))
	_, err := p.Run()
	return err
}
