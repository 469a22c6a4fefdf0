package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/quickrun/internal/menu"
)

func testCatalog() *menu.Catalog {
	return menu.NewCatalog("/tmp/quickrun.conf", []menu.Group{
		{Label: "dev", Items: []menu.Item{
			{Name: "build", Command: "make build"},
			{Name: "lint", Command: "make lint"},
			{Name: "test", Command: "make test"},
		}},
		{Label: "ops", Items: []menu.Item{
			{Name: "deploy", Command: "bin/deploy prod"},
			{Name: "logs", Command: "tail -f /var/log/app.log"},
		}},
	})
}

func flatCatalog(count int) *menu.Catalog {
	items := make([]menu.Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, menu.Item{Name: fmt.Sprintf("job%d", i), Command: fmt.Sprintf("run job%d", i)})
	}
	return menu.NewCatalog("/tmp/quickrun.conf", []menu.Group{{Items: items}})
}

func focusedName(t *testing.T, m *Model) string {
	t.Helper()
	item, ok := m.grid.Focused()
	if !ok {
		t.Fatalf("expected a focused item")
	}
	return item.Name
}

func TestNewModelFocusesFirstItem(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	if got := focusedName(t, m); got != "build" {
		t.Fatalf("initial focus = %q, want build", got)
	}
	if m.Selection() != nil {
		t.Fatalf("selection should be nil before commit")
	}
}

func TestWindowSizeUpdatesDimensions(t *testing.T) {
	m := NewModel(testCatalog(), 0, 0, false)
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.width != 60 || m.height != 20 {
		t.Fatalf("dimensions = %dx%d, want 60x20", m.width, m.height)
	}
	wide := m.columns()
	h.Send(tea.WindowSizeMsg{Width: 13, Height: 20})
	if narrow := m.columns(); narrow >= wide {
		t.Fatalf("columns = %d after narrowing, want fewer than %d", narrow, wide)
	}
}

func TestFixedDimensionsIgnoreResize(t *testing.T) {
	m := NewModel(testCatalog(), 40, 12, false)
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 50})
	if m.width != 40 || m.height != 12 {
		t.Fatalf("dimensions = %dx%d, want fixed 40x12", m.width, m.height)
	}
}

func TestColumnsFollowWidth(t *testing.T) {
	// Widest name is "deploy" (6 cells), so each column costs 7 with
	// the gap.
	cases := []struct {
		width int
		want  int
	}{
		{width: 20, want: 3},
		{width: 13, want: 2},
		{width: 6, want: 1},
		{width: 1, want: 1},
	}
	for _, tc := range cases {
		m := NewModel(testCatalog(), tc.width, 0, false)
		if got := m.columns(); got != tc.want {
			t.Errorf("columns at width %d = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestUnknownMessagesAreIgnored(t *testing.T) {
	m := NewModel(testCatalog(), 80, 24, false)
	h := NewHarness(m)
	h.Send(struct{ tea.Msg }{})
	if got := focusedName(t, h.Model()); got != "build" {
		t.Fatalf("focus moved on unknown message: %q", got)
	}
}
