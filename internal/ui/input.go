package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/quickrun/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.editor.Cursor() {
		m.filterCursorDirty = true
	}
}

// handleTextInput routes line-editing keys to the filter editor and
// reports whether the key was consumed. Arrow keys are deliberately
// absent: they always belong to the grid, never to the editor.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	before := m.editor.Cursor()
	switch msg.String() {
	case "ctrl+u":
		if !m.editor.DeleteToStart() {
			return false
		}
		m.noteFilterCursorChange(before)
		return true
	case "ctrl+k":
		if !m.editor.DeleteToEnd() {
			return false
		}
		m.noteFilterCursorChange(before)
		return true
	case "ctrl+w":
		if !m.editor.DeleteWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		return true
	case "alt+d":
		if !m.editor.DeleteWordForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		return true
	case "ctrl+a":
		if !m.editor.MoveStart() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.editor.Cursor())
		return true
	case "ctrl+e":
		if !m.editor.MoveEnd() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.editor.Cursor())
		return true
	case "ctrl+b":
		if !m.editor.MoveRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.editor.Cursor())
		return true
	case "ctrl+f":
		if !m.editor.MoveRuneForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.editor.Cursor())
		return true
	case "alt+b":
		if !m.editor.MoveWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(m.editor.Cursor())
		return true
	case "alt+f":
		if !m.editor.MoveWordForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(m.editor.Cursor())
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.editor.DeleteRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		return true
	case tea.KeyDelete, tea.KeyCtrlD:
		if !m.editor.DeleteRuneForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		return true
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		if len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
			if unicode.IsSpace(r) {
				// allow the dedicated space handler to manage spaces
				return false
			}
		}
		if !m.editor.Insert(string(msg.Runes)) {
			return false
		}
		m.noteFilterCursorChange(before)
		return true
	case tea.KeySpace:
		if !m.editor.Insert(" ") {
			return false
		}
		m.noteFilterCursorChange(before)
		return true
	}
	return false
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "Filter> "
	if styles.Header != nil {
		prompt = styles.Header.Render("Filter>") + " "
	}
	text := m.editor.Text()
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.editor.Cursor()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	if pos < len(runes) {
		caretRune = string(runes[pos])
	}
	caret := m.renderFilterCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
