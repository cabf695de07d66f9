package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/wippyai/plbin/assembly"
	"github.com/wippyai/plbin/instruction"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Browse an assembly interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m := newInspectModel(args[0], func() (*assembly.Assembly, error) {
				return a.readAssembly(args[0])
			})
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type inspectState int

const (
	stateTypes inspectState = iota
	stateMembers
	stateCode
)

type member struct {
	kind   string
	name   string
	detail string
	code   []string
}

type inspectModel struct {
	err       error
	asm       *assembly.Assembly
	load      func() (*assembly.Assembly, error)
	filename  string
	filter    textinput.Model
	types     []string
	members   []member
	typeName  string
	selected  int
	typeSel   int
	memberSel int
	width     int
	state     inspectState
}

type assemblyLoadedMsg struct {
	err error
	asm *assembly.Assembly
}

func newInspectModel(filename string, load func() (*assembly.Assembly, error)) *inspectModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter types"
	ti.Width = 40
	return &inspectModel{
		filename: filename,
		load:     load,
		filter:   ti,
		state:    stateTypes,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return func() tea.Msg {
		asm, err := m.load()
		return assemblyLoadedMsg{asm: asm, err: err}
	}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assemblyLoadedMsg:
		m.asm, m.err = msg.asm, msg.err
		m.applyFilter()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.filter.Focused() {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "/":
			if m.state == stateTypes {
				m.filter.Focus()
				return m, textinput.Blink
			}
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < m.listLen()-1 {
				m.selected++
			}
		case "enter", "right", "l":
			m.descend()
		case "esc", "left", "h", "backspace":
			m.ascend()
		}
	}
	return m, nil
}

func (m *inspectModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *inspectModel) applyFilter() {
	m.types = m.types[:0]
	if m.asm == nil {
		return
	}
	needle := strings.ToLower(m.filter.Value())
	for _, name := range m.asm.TypeNames() {
		if needle == "" || strings.Contains(strings.ToLower(name), needle) {
			m.types = append(m.types, name)
		}
	}
	m.selected = min(m.selected, max(0, len(m.types)-1))
}

func (m *inspectModel) listLen() int {
	switch m.state {
	case stateTypes:
		return len(m.types)
	case stateMembers:
		return len(m.members)
	case stateCode:
		return len(m.members[m.memberSel].code)
	}
	return 0
}

func (m *inspectModel) descend() {
	switch m.state {
	case stateTypes:
		if len(m.types) == 0 {
			return
		}
		m.typeName = m.types[m.selected]
		m.members = membersOf(m.asm.TypeDefs[m.typeName])
		m.typeSel = m.selected
		m.selected = 0
		m.state = stateMembers
	case stateMembers:
		if len(m.members) == 0 || m.members[m.selected].kind != "method" {
			return
		}
		m.memberSel = m.selected
		m.selected = 0
		m.state = stateCode
	}
}

func (m *inspectModel) ascend() {
	switch m.state {
	case stateMembers:
		m.state = stateTypes
		m.selected = m.typeSel
		m.members = nil
		m.typeName = ""
	case stateCode:
		m.state = stateMembers
		m.selected = m.memberSel
	}
}

func membersOf(def assembly.TypeDef) []member {
	if def == nil {
		return nil
	}
	var out []member
	for name, b := range def.GenericParams().All() {
		detail := ""
		if b.Parent != nil {
			detail = b.Parent.String()
		}
		out = append(out, member{kind: "generic", name: name, detail: detail})
	}
	for _, f := range def.FieldTable().All() {
		out = append(out, member{kind: "field", name: f.Name, detail: f.Type.String()})
	}
	for _, meth := range def.MethodTable().All() {
		code := make([]string, len(meth.Instructions))
		for i, in := range meth.Instructions {
			code[i] = instruction.Disassemble(in)
		}
		out = append(out, member{kind: "method", name: meth.Name, detail: meth.RetType.String(), code: code})
	}
	return out
}

func (m *inspectModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.asm == nil {
		return "Loading assembly..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("plb inspect"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(" ")
	b.WriteString(nameStyle.Render(m.asm.Name))
	b.WriteString("\n\n")

	switch m.state {
	case stateTypes:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		for i, name := range m.types {
			kind := "struct"
			if _, ok := m.asm.TypeDefs[name].(*assembly.ClassDef); ok {
				kind = "class"
			}
			m.writeItem(&b, i, typeStyle.Render(kind)+" "+nameStyle.Render(name))
		}
		if len(m.types) == 0 {
			b.WriteString(helpStyle.Render("no matching types"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • / filter • q quit"))

	case stateMembers:
		b.WriteString(fmt.Sprintf("Members of %s\n\n", nameStyle.Render(m.typeName)))
		for i, mem := range m.members {
			head := mem.kind + " " + mem.name + " "
			detail := m.fit(mem.detail, runewidth.StringWidth(head))
			m.writeItem(&b, i, typeStyle.Render(mem.kind)+" "+nameStyle.Render(mem.name)+" "+helpStyle.Render(detail))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter code • esc back • q quit"))

	case stateCode:
		meth := m.members[m.memberSel]
		b.WriteString(fmt.Sprintf("Code of %s\n\n", nameStyle.Render(meth.name)))
		for i, line := range meth.code {
			m.writeItem(&b, i, fmt.Sprintf("%04d  %s", i, m.fit(line, 6)))
		}
		if len(meth.code) == 0 {
			b.WriteString(helpStyle.Render("no instructions"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • esc back • q quit"))
	}
	return b.String()
}

// fit truncates s so that an item whose other text is used columns wide
// stays on one line. Before the first WindowSizeMsg nothing is truncated.
func (m *inspectModel) fit(s string, used int) string {
	if m.width == 0 {
		return s
	}
	// two columns for the selection marker
	avail := m.width - used - 2
	if avail < 1 {
		return ""
	}
	return runewidth.Truncate(s, avail, "…")
}

func (m *inspectModel) writeItem(b *strings.Builder, i int, text string) {
	if i == m.selected {
		b.WriteString(selectedStyle.Render("> " + text))
	} else {
		b.WriteString("  " + text)
	}
	b.WriteString("\n")
}
