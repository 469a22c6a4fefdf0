package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingNarrowsGrid(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("te")
	if got := m.editor.Text(); got != "te" {
		t.Fatalf("filter text = %q, want te", got)
	}
	if got := m.grid.VisibleCount(); got != 1 {
		t.Fatalf("visible items = %d, want 1", got)
	}
	if got := focusedName(t, m); got != "test" {
		t.Fatalf("focus = %q, want test", got)
	}
}

func TestSpaceIsLiteralFilterText(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("a b")
	if got := m.editor.Text(); got != "a b" {
		t.Fatalf("filter text = %q, want %q", got, "a b")
	}
}

func TestBackspaceRefiltersGrid(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("tes")
	h.SendKey(tea.KeyBackspace)
	if got := m.editor.Text(); got != "te" {
		t.Fatalf("filter text = %q, want te", got)
	}
	if got := m.grid.VisibleCount(); got != 1 {
		t.Fatalf("visible items = %d, want 1", got)
	}
}

func TestCtrlUDeletesBeforeCursor(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("test")
	h.SendKey(tea.KeyCtrlU)
	if got := m.editor.Text(); got != "" {
		t.Fatalf("filter text = %q, want empty", got)
	}
	if got := m.grid.VisibleCount(); got != 5 {
		t.Fatalf("visible items = %d, want full catalog", got)
	}
}

func TestCtrlKTruncatesAtCursor(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("ab")
	h.SendKey(tea.KeyCtrlB)
	h.SendKey(tea.KeyCtrlK)
	if got := m.editor.Text(); got != "a" {
		t.Fatalf("filter text = %q, want a", got)
	}
}

func TestCtrlWDeletesPreviousWord(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("make all")
	h.SendKey(tea.KeyCtrlW)
	if got := m.editor.Text(); got != "make " {
		t.Fatalf("filter text = %q, want %q", got, "make ")
	}
}

func TestAltDDeletesNextWord(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("one two")
	h.SendKey(tea.KeyCtrlA)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}, Alt: true})
	if got := m.editor.Text(); got != "two" {
		t.Fatalf("filter text = %q, want two", got)
	}
}

func TestWordMotionKeys(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("one two")
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: true})
	if got := m.editor.Cursor(); got != 4 {
		t.Fatalf("cursor after alt+b = %d, want 4", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true})
	if got := m.editor.Cursor(); got != 7 {
		t.Fatalf("cursor after alt+f = %d, want 7", got)
	}
	h.SendKey(tea.KeyCtrlA)
	if got := m.editor.Cursor(); got != 0 {
		t.Fatalf("cursor after ctrl+a = %d, want 0", got)
	}
	h.SendKey(tea.KeyCtrlE)
	if got := m.editor.Cursor(); got != 7 {
		t.Fatalf("cursor after ctrl+e = %d, want 7", got)
	}
}

func TestDeleteForwardKeys(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("ab")
	h.SendKey(tea.KeyCtrlA)
	h.SendKey(tea.KeyDelete)
	if got := m.editor.Text(); got != "b" {
		t.Fatalf("filter text after delete = %q, want b", got)
	}
	h.SendKey(tea.KeyCtrlD)
	if got := m.editor.Text(); got != "" {
		t.Fatalf("filter text after ctrl+d = %q, want empty", got)
	}
}

func TestAltRunesDoNotInsert(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	if got := m.editor.Text(); got != "" {
		t.Fatalf("filter text = %q, want empty", got)
	}
}

func TestArrowsNeverEditFilter(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("te")
	h.SendKey(tea.KeyLeft)
	h.SendKey(tea.KeyRight)
	if got := m.editor.Text(); got != "te" {
		t.Fatalf("filter text = %q, want te", got)
	}
	if got := m.editor.Cursor(); got != 2 {
		t.Fatalf("cursor = %d, arrows must not move it", got)
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "Filter>") {
		t.Fatalf("prompt missing label: %q", prompt)
	}
	if !strings.Contains(prompt, "type to search)") {
		t.Fatalf("prompt missing placeholder: %q", prompt)
	}
}

func TestFilterPromptShowsTypedText(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.SendText("te")
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "te") {
		t.Fatalf("prompt missing filter text: %q", prompt)
	}
	if strings.Contains(prompt, "type to search") {
		t.Fatalf("placeholder should disappear once text is typed: %q", prompt)
	}
}
