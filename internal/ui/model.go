package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/quickrun/internal/format/gridflow"
	"github.com/atomicstack/quickrun/internal/logging/events"
	"github.com/atomicstack/quickrun/internal/menu"
	"github.com/atomicstack/quickrun/internal/theme"
	"github.com/atomicstack/quickrun/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the launcher. It owns the
// filter editor, the grid focus state, and the viewport geometry; the
// catalog itself stays immutable for the lifetime of the session.
type Model struct {
	catalog *menu.Catalog
	editor  *state.Editor
	grid    *state.Grid

	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	scrollOffset int

	showFooter bool
	selection  *menu.Item

	keys              KeyMap
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state for the given catalog.
func NewModel(catalog *menu.Catalog, width, height int, showFooter bool) *Model {
	m := &Model{
		catalog:    catalog,
		editor:     state.NewEditor(),
		grid:       state.NewGrid(catalog),
		showFooter: showFooter,
		keys:       DefaultKeyMap(),
	}
	m.editor.OnChange(m.filterChanged)
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// filterChanged is the editor change callback: every text mutation
// recomputes the visible grid from scratch.
func (m *Model) filterChanged(text string) {
	events.Filter.Changed(text)
	m.grid.Recompute(text)
	events.Grid.Recompute(text, m.grid.VisibleCount())
}

// Selection returns the committed item, or nil when the session ended
// without one.
func (m *Model) Selection() *menu.Item {
	return m.selection
}

// columns derives the grid column count from the viewport width and
// the widest catalog name.
func (m *Model) columns() int {
	if m.width <= 0 {
		return 1
	}
	return gridflow.Columns(m.width, m.catalog.MaxNameWidth())
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
