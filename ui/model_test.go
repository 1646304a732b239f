package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m Model, key tea.KeyType) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model)
}

func TestToggleAndConfirm(t *testing.T) {
	m := NewModel([]string{"a.txt", "b.txt", "c.txt"}, nil, nil)

	m = press(m, tea.KeyTab)  // toggle a.txt
	m = press(m, tea.KeyDown) // cursor to b.txt
	m = press(m, tea.KeyDown) // cursor to c.txt
	m = press(m, tea.KeyTab)  // toggle c.txt
	m = press(m, tea.KeyEnter)

	if !m.Confirmed() {
		t.Fatal("enter should confirm")
	}
	if got := m.Selected(); !reflect.DeepEqual(got, []string{"a.txt", "c.txt"}) {
		t.Errorf("Selected() = %v, want [a.txt c.txt]", got)
	}
}

func TestCancelReturnsNothing(t *testing.T) {
	m := NewModel([]string{"a.txt"}, nil, nil)
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyEsc)

	if m.Confirmed() {
		t.Error("esc should not confirm")
	}
	if got := m.Selected(); got != nil {
		t.Errorf("Selected() after cancel = %v, want nil", got)
	}
}

func TestToggleTwiceDeselects(t *testing.T) {
	m := NewModel([]string{"a.txt"}, nil, nil)
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyEnter)

	if got := m.Selected(); got != nil {
		t.Errorf("Selected() = %v, want nil after double toggle", got)
	}
}

func TestFilteredToggleTargetsVisibleFile(t *testing.T) {
	m := NewModel([]string{"a.txt", "b.go"}, nil, nil)

	// Type "go" into the filter, then toggle the only visible file.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("go")})
	m = updated.(Model)
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyEnter)

	if got := m.Selected(); !reflect.DeepEqual(got, []string{"b.go"}) {
		t.Errorf("Selected() = %v, want [b.go]", got)
	}
}

func TestRefreshKeepsSelection(t *testing.T) {
	m := NewModel([]string{"a.txt", "b.txt"}, nil, nil)
	m = press(m, tea.KeyTab) // select a.txt

	updated, _ := m.Update(PathsMsg([]string{"a.txt", "b.txt", "new.txt"}))
	m = updated.(Model)
	m = press(m, tea.KeyEnter)

	if got := m.Selected(); !reflect.DeepEqual(got, []string{"a.txt"}) {
		t.Errorf("Selected() after refresh = %v, want [a.txt]", got)
	}
	if len(m.filtered) != 3 {
		t.Errorf("filtered count = %d, want 3 after refresh", len(m.filtered))
	}
}
