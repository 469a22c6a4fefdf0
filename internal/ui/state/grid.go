package state

import (
	"strings"

	"github.com/atomicstack/quickrun/internal/format/gridflow"
	"github.com/atomicstack/quickrun/internal/menu"
)

// Direction identifies one of the four focus motions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// VisibleGroup is one group's slice of the grid after filtering: the
// label plus the items whose names matched, in catalog order.
type VisibleGroup struct {
	Label string
	Items []menu.Item

	source  int   // catalog index of the group
	origins []int // catalog item index per visible item
}

// Grid owns visibility and focus. Visibility is always a full
// recompute from the catalog and the filter text, never an incremental
// patch. Focus is a pair of indexes into the visible structure, backed
// by the catalog coordinates of the focused entry so the same entry
// can be re-focused after a recompute.
type Grid struct {
	catalog *menu.Catalog
	filter  string
	visible []VisibleGroup

	group int // visible group index, -1 when nothing is focused
	item  int // visible item index within that group

	sourceGroup int
	sourceItem  int
}

// NewGrid builds the grid for a catalog with an empty filter and the
// focus on the first item.
func NewGrid(catalog *menu.Catalog) *Grid {
	g := &Grid{catalog: catalog, group: -1}
	g.Recompute("")
	return g
}

// Recompute rebuilds the visible structure for the given filter text.
// Matching is a case-insensitive substring test on item names, with
// the filter used verbatim, spaces included. Groups left without
// matches disappear entirely, label included. The previously focused
// entry keeps focus when still visible; otherwise focus falls back to
// the first item of the first visible group, or to nothing at all.
func (g *Grid) Recompute(filter string) {
	g.filter = filter
	needle := strings.ToLower(filter)
	g.visible = nil
	for gi, group := range g.catalog.Groups() {
		var items []menu.Item
		var origins []int
		for ii, item := range group.Items {
			if strings.Contains(strings.ToLower(item.Name), needle) {
				items = append(items, item)
				origins = append(origins, ii)
			}
		}
		if len(items) == 0 {
			continue
		}
		g.visible = append(g.visible, VisibleGroup{
			Label:   group.Label,
			Items:   items,
			source:  gi,
			origins: origins,
		})
	}
	g.restoreFocus()
}

// restoreFocus re-focuses the entry recorded by catalog coordinates,
// falling back to the first visible item when it was filtered out.
func (g *Grid) restoreFocus() {
	if g.group >= 0 {
		for vi, group := range g.visible {
			if group.source != g.sourceGroup {
				continue
			}
			for ii, origin := range group.origins {
				if origin == g.sourceItem {
					g.setFocus(vi, ii)
					return
				}
			}
			break
		}
	}
	g.FocusFirst()
}

func (g *Grid) setFocus(group, item int) {
	g.group = group
	g.item = item
	g.sourceGroup = g.visible[group].source
	g.sourceItem = g.visible[group].origins[item]
}

// FocusFirst focuses the first visible item and reports whether there
// was one.
func (g *Grid) FocusFirst() bool {
	if len(g.visible) == 0 {
		g.group, g.item = -1, 0
		g.sourceGroup, g.sourceItem = -1, -1
		return false
	}
	g.setFocus(0, 0)
	return true
}

// Visible returns the filtered groups in display order.
func (g *Grid) Visible() []VisibleGroup {
	return g.visible
}

// NotFound reports whether the filter hid every item. It is never true
// for an empty filter on a non-empty catalog.
func (g *Grid) NotFound() bool {
	return len(g.visible) == 0
}

// Filter returns the last applied filter text.
func (g *Grid) Filter() string {
	return g.filter
}

// VisibleCount returns the number of items that survived the filter.
func (g *Grid) VisibleCount() int {
	total := 0
	for _, group := range g.visible {
		total += len(group.Items)
	}
	return total
}

// Focused returns the focused item, if any.
func (g *Grid) Focused() (menu.Item, bool) {
	if g.group < 0 {
		return menu.Item{}, false
	}
	return g.visible[g.group].Items[g.item], true
}

// FocusIndex returns the visible coordinates of the focus. The group
// index is -1 when nothing is focused.
func (g *Grid) FocusIndex() (group, item int) {
	return g.group, g.item
}

// MoveFocus moves the focus one cell in the given direction across a
// grid laid out with the given column count. Horizontal motion wraps
// within the current row; vertical motion stays inside the current
// group, clamping the column when the destination row is shorter, and
// is a no-op at the group's first or last row. Groups are only crossed
// with NextGroup and PrevGroup.
func (g *Grid) MoveFocus(dir Direction, columns int) bool {
	if g.group < 0 {
		return false
	}
	if columns < 1 {
		columns = 1
	}
	count := len(g.visible[g.group].Items)
	row, col := gridflow.Position(g.item, columns)
	switch dir {
	case Left:
		col--
		if col < 0 {
			col = gridflow.RowWidth(count, columns, row) - 1
		}
	case Right:
		col++
		if col >= gridflow.RowWidth(count, columns, row) {
			col = 0
		}
	case Up:
		if row == 0 {
			return false
		}
		row--
		if w := gridflow.RowWidth(count, columns, row); col >= w {
			col = w - 1
		}
	case Down:
		if row >= gridflow.Rows(count, columns)-1 {
			return false
		}
		row++
		if w := gridflow.RowWidth(count, columns, row); col >= w {
			col = w - 1
		}
	}
	target := gridflow.Index(row, col, columns)
	if target == g.item {
		return false
	}
	g.setFocus(g.group, target)
	return true
}

// NextGroup moves focus to the first item of the next visible group,
// wrapping past the last group to the first.
func (g *Grid) NextGroup() bool {
	if g.group < 0 || len(g.visible) < 2 {
		return false
	}
	g.setFocus((g.group+1)%len(g.visible), 0)
	return true
}

// PrevGroup moves focus to the first item of the previous visible
// group, wrapping past the first group to the last.
func (g *Grid) PrevGroup() bool {
	if g.group < 0 || len(g.visible) < 2 {
		return false
	}
	g.setFocus((g.group+len(g.visible)-1)%len(g.visible), 0)
	return true
}

// FocusHome moves focus to the first item of the current group.
func (g *Grid) FocusHome() bool {
	if g.group < 0 || g.item == 0 {
		return false
	}
	g.setFocus(g.group, 0)
	return true
}

// FocusEnd moves focus to the last item of the current group.
func (g *Grid) FocusEnd() bool {
	if g.group < 0 {
		return false
	}
	last := len(g.visible[g.group].Items) - 1
	if g.item == last {
		return false
	}
	g.setFocus(g.group, last)
	return true
}
