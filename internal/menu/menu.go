package menu

import (
	"sort"

	"github.com/mattn/go-runewidth"
)

// Item is a single launchable entry: a display name and the shell
// command it stands for. The command is opaque and never parsed.
type Item struct {
	Name    string
	Command string
}

// Group is an ordered run of items under one label. Items that appear
// before any group header live in the default group, whose label is
// the empty string.
type Group struct {
	Label string
	Items []Item
}

// Catalog is the immutable result of loading a config file. Groups are
// sorted by label and items by name, byte-wise in both cases, so two
// loads of the same file always produce the same order.
type Catalog struct {
	groups       []Group
	path         string
	maxNameWidth int
}

// NewCatalog builds a catalog from groups, sorting groups by label and
// items by name (byte-wise, stable so duplicate names keep their given
// order) and measuring the widest name in terminal cells.
func NewCatalog(path string, groups []Group) *Catalog {
	for i := range groups {
		items := groups[i].Items
		sort.SliceStable(items, func(a, b int) bool { return items[a].Name < items[b].Name })
	}
	sort.Slice(groups, func(a, b int) bool { return groups[a].Label < groups[b].Label })
	width := 0
	for _, group := range groups {
		for _, item := range group.Items {
			if w := runewidth.StringWidth(item.Name); w > width {
				width = w
			}
		}
	}
	return &Catalog{groups: groups, path: path, maxNameWidth: width}
}

// Groups returns the catalog's groups in display order.
func (c *Catalog) Groups() []Group { return c.groups }

// Path reports the file the catalog was loaded from.
func (c *Catalog) Path() string { return c.path }

// MaxNameWidth is the widest item name measured in terminal cells,
// or 0 for an empty catalog. Grid cells are sized from it.
func (c *Catalog) MaxNameWidth() int { return c.maxNameWidth }

// Empty reports whether the catalog holds no items at all. Headers
// without items do not count: a group only exists once an item lands
// in it.
func (c *Catalog) Empty() bool { return len(c.groups) == 0 }

// Len returns the total number of items across all groups.
func (c *Catalog) Len() int {
	total := 0
	for _, group := range c.groups {
		total += len(group.Items)
	}
	return total
}
