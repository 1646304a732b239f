// Package ui is the built-in fallback picker used when no external
// multi-select tool is on PATH. It shows the included candidate list with a
// filter input and lets the user toggle files before confirming.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jesspatton/catclip/filesystem"
)

// Model represents the picker state for the Bubbletea program.
type Model struct {
	// UI State
	width    int
	height   int
	cursor   int
	showHelp bool

	// Components
	keys  KeyMap
	help  help.Model
	input textinput.Model

	// Data / Dependencies
	paths    []string // current candidates, walk order
	filtered []int    // indexes into paths matching the filter
	selected map[string]bool
	watcher  *filesystem.Watcher
	rescan   func() []string

	// Result
	confirmed bool
}

// Messages

// RescanMsg indicates the file system changed and the candidate list should
// be rebuilt.
type RescanMsg struct{}

// PathsMsg carries the refreshed candidate list.
type PathsMsg []string

// NewModel creates a picker over the given candidate paths. rescan rebuilds
// the candidate list after a watcher event; watcher may be nil to disable
// live refresh.
func NewModel(paths []string, rescan func() []string, watcher *filesystem.Watcher) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		keys:     NewKeyMap(),
		help:     help.New(),
		input:    ti,
		paths:    paths,
		filtered: filterPaths(paths, ""),
		selected: make(map[string]bool),
		watcher:  watcher,
		rescan:   rescan,
	}
}

// Init initializes the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForWatcher)
}

// waitForWatcher blocks on the next file system event.
func (m Model) waitForWatcher() tea.Msg {
	if m.watcher == nil {
		return nil
	}
	<-m.watcher.Events
	return RescanMsg{}
}

// Update handles incoming messages and updates the picker state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RescanMsg:
		return m, tea.Batch(m.refreshPaths, m.waitForWatcher)

	case PathsMsg:
		// Selections survive a refresh; files that vanished drop out when
		// the selection is collected.
		m.paths = msg
		m.filtered = filterPaths(m.paths, m.input.Value())
		if m.cursor >= len(m.filtered) {
			m.cursor = max(0, len(m.filtered)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.selected = make(map[string]bool)
			return m, tea.Quit

		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.filtered) {
				path := m.paths[m.filtered[m.cursor]]
				m.selected[path] = !m.selected[path]
			}
			return m, nil

		case key.Matches(msg, m.keys.All):
			for _, idx := range m.filtered {
				m.selected[m.paths[idx]] = true
			}
			return m, nil

		case key.Matches(msg, m.keys.None):
			m.selected = make(map[string]bool)
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		}
	}

	// Everything else feeds the filter input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	newFiltered := filterPaths(m.paths, m.input.Value())
	if len(newFiltered) != len(m.filtered) {
		m.cursor = 0
	}
	m.filtered = newFiltered
	return m, cmd
}

// refreshPaths rebuilds the candidate list via the rescan callback.
func (m Model) refreshPaths() tea.Msg {
	if m.rescan == nil {
		return nil
	}
	return PathsMsg(m.rescan())
}

// View renders the picker.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("catclip") + "\n")
	b.WriteString(m.input.View() + "\n\n")

	listHeight := m.height - 6
	if listHeight < 1 {
		listHeight = 10
	}
	start, end := m.visibleRange(listHeight)

	for i := start; i < end; i++ {
		path := m.paths[m.filtered[i]]

		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		check := "[ ]"
		if m.selected[path] {
			check = "[x]"
		}

		line := fmt.Sprintf("%s %s %s", cursor, check, path)
		switch {
		case m.cursor == i:
			b.WriteString(cursorStyle.Render(line))
		case m.selected[path]:
			b.WriteString(selectedStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	status := fmt.Sprintf("%d/%d files, %d selected", len(m.filtered), len(m.paths), m.selectedCount())
	b.WriteString("\n" + statusStyle.Render(status) + "\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) visibleRange(listHeight int) (int, int) {
	start := 0
	end := len(m.filtered)

	if len(m.filtered) > listHeight {
		if m.cursor < listHeight/2 {
			start = 0
			end = listHeight
		} else if m.cursor > len(m.filtered)-listHeight/2 {
			start = len(m.filtered) - listHeight
			end = len(m.filtered)
		} else {
			start = m.cursor - listHeight/2
			end = m.cursor + listHeight/2
		}
	}
	return start, end
}

func (m Model) selectedCount() int {
	n := 0
	for _, on := range m.selected {
		if on {
			n++
		}
	}
	return n
}

// Selected returns the chosen paths in candidate order, or nil when the
// picker was cancelled.
func (m Model) Selected() []string {
	if !m.confirmed {
		return nil
	}
	var out []string
	for _, p := range m.paths {
		if m.selected[p] {
			out = append(out, p)
		}
	}
	return out
}

// Confirmed reports whether the user confirmed the selection rather than
// cancelling.
func (m Model) Confirmed() bool {
	return m.confirmed
}
