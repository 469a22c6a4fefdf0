package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/quickrun/internal/logging/events"
	"github.com/atomicstack/quickrun/internal/ui/state"
)

// handleKeyMsg dispatches a key press. The filter editor gets first
// refusal; whatever it declines is matched against the key map.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		return m.cancel()
	case key.Matches(keyMsg, m.keys.Commit):
		return m.commit()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveFocus(state.Up)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveFocus(state.Down)
	case key.Matches(keyMsg, m.keys.Left):
		m.moveFocus(state.Left)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveFocus(state.Right)
	case key.Matches(keyMsg, m.keys.NextGroup):
		m.cycleGroup(true)
	case key.Matches(keyMsg, m.keys.PrevGroup):
		m.cycleGroup(false)
	case key.Matches(keyMsg, m.keys.Home):
		if m.grid.FocusHome() {
			m.noteFocus()
		}
	case key.Matches(keyMsg, m.keys.End):
		if m.grid.FocusEnd() {
			m.noteFocus()
		}
	}
	return nil
}

// commit ends the session carrying the focused item. With nothing
// focused (the not-found placeholder) the key is ignored.
func (m *Model) commit() tea.Cmd {
	item, ok := m.grid.Focused()
	if !ok {
		return nil
	}
	m.selection = &item
	events.Session.Commit(item.Name, item.Command)
	return tea.Quit
}

func (m *Model) cancel() tea.Cmd {
	m.selection = nil
	events.Session.Cancel()
	return tea.Quit
}

func (m *Model) moveFocus(dir state.Direction) {
	if m.grid.MoveFocus(dir, m.columns()) {
		m.noteFocus()
	}
}

func (m *Model) cycleGroup(forward bool) {
	var moved bool
	if forward {
		moved = m.grid.NextGroup()
	} else {
		moved = m.grid.PrevGroup()
	}
	if moved {
		m.noteFocus()
	}
}

func (m *Model) noteFocus() {
	group, _ := m.grid.FocusIndex()
	if group < 0 {
		return
	}
	item, ok := m.grid.Focused()
	if !ok {
		return
	}
	events.Grid.Focus(m.grid.Visible()[group].Label, item.Name)
}
