package main

import (
	stderrors "errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/plbin/assembly"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T) *inspectModel {
	t.Helper()
	m := newInspectModel("app.plb", func() (*assembly.Assembly, error) {
		return sampleAssembly(), nil
	})
	msg := m.Init()()
	if _, ok := msg.(assemblyLoadedMsg); !ok {
		t.Fatalf("Init produced %T", msg)
	}
	m.Update(msg)
	return m
}

func press(m *inspectModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInspectNavigation(t *testing.T) {
	m := loadedModel(t)

	if got := strings.Join(m.types, ","); got != "App.Main,App.Point" {
		t.Fatalf("types = %s", got)
	}
	view := m.View()
	if !strings.Contains(view, "App.Main") || !strings.Contains(view, "App.Point") {
		t.Errorf("type list view:\n%s", view)
	}

	press(m, "enter")
	if m.state != stateMembers || m.typeName != "App.Main" {
		t.Fatalf("state = %d type = %q", m.state, m.typeName)
	}
	if len(m.members) != 2 || m.members[0].kind != "generic" || m.members[1].kind != "method" {
		t.Fatalf("members = %+v", m.members)
	}

	// generics have no code
	press(m, "enter")
	if m.state != stateMembers {
		t.Fatal("entered code view from a generic")
	}

	press(m, "down", "down", "enter")
	if m.state != stateCode {
		t.Fatalf("state = %d, want code", m.state)
	}
	view = m.View()
	for _, want := range []string{"Run()", "load.u64 r1, 0", "ret r1"} {
		if !strings.Contains(view, want) {
			t.Errorf("code view missing %q:\n%s", want, view)
		}
	}

	press(m, "esc")
	if m.state != stateMembers || m.selected != 1 {
		t.Errorf("after esc: state = %d selected = %d", m.state, m.selected)
	}
	press(m, "esc")
	if m.state != stateTypes || m.selected != 0 {
		t.Errorf("after second esc: state = %d selected = %d", m.state, m.selected)
	}

	press(m, "down", "enter")
	if m.typeName != "App.Point" || len(m.members) != 1 || m.members[0].name != "X" {
		t.Errorf("Point members = %+v", m.members)
	}
}

func TestInspectFilter(t *testing.T) {
	m := loadedModel(t)

	press(m, "/")
	if !m.filter.Focused() {
		t.Fatal("filter not focused")
	}
	press(m, "p", "o", "i", "n", "t")
	if m.filter.Value() != "point" {
		t.Fatalf("filter = %q", m.filter.Value())
	}
	if len(m.types) != 1 || m.types[0] != "App.Point" {
		t.Fatalf("filtered types = %v", m.types)
	}

	press(m, "enter")
	if m.filter.Focused() {
		t.Fatal("enter did not leave the filter")
	}
	press(m, "enter")
	if m.typeName != "App.Point" {
		t.Errorf("opened %q", m.typeName)
	}

	press(m, "esc", "/", "x", "y", "z", "esc")
	if len(m.types) != 0 {
		t.Errorf("types = %v, want none", m.types)
	}
	if !strings.Contains(m.View(), "no matching types") {
		t.Error("empty list not reported")
	}
	press(m, "enter")
	if m.state != stateTypes {
		t.Error("entered an empty list")
	}
}

func TestInspectTruncatesToWidth(t *testing.T) {
	m := loadedModel(t)
	press(m, "enter", "down")
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})

	view := m.View()
	if strings.Contains(view, "[!]System.Int64") {
		t.Errorf("long return type not truncated:\n%s", view)
	}
	if !strings.Contains(view, "…") {
		t.Errorf("no ellipsis in view:\n%s", view)
	}

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	if !strings.Contains(m.View(), "[!]System.Int64") {
		t.Error("return type truncated on a wide terminal")
	}
}

func TestInspectQuit(t *testing.T) {
	m := loadedModel(t)
	if !isQuit(press(m, "q")) {
		t.Error("q did not quit")
	}
	m = loadedModel(t)
	press(m, "/")
	if !isQuit(press(m, "ctrl+c")) {
		t.Error("ctrl+c did not quit while filtering")
	}
}

func TestInspectLoadError(t *testing.T) {
	m := newInspectModel("missing.plb", func() (*assembly.Assembly, error) {
		return nil, stderrors.New("no such file")
	})
	if got := m.View(); !strings.Contains(got, "Loading") {
		t.Errorf("view before load = %q", got)
	}
	m.Update(m.Init()())
	if got := m.View(); !strings.Contains(got, "no such file") {
		t.Errorf("view = %q", got)
	}
}
