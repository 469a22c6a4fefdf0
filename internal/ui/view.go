package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/quickrun/internal/format/gridflow"
	"github.com/atomicstack/quickrun/internal/logging/events"
	"github.com/atomicstack/quickrun/internal/menu"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. The filter prompt is pinned to the top
// row; below it the group grid scrolls so the focused row stays
// visible, followed by the focused command hint and the optional
// footer.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.filterPrompt(), raw: true})

	body, focusLine := m.buildBodyLines()
	if maxBody := m.maxBodyLines(); maxBody > 0 && len(body) > maxBody {
		m.syncScroll(focusLine, len(body), maxBody)
		body = body[m.scrollOffset : m.scrollOffset+maxBody]
	} else {
		m.scrollOffset = 0
	}
	lines = append(lines, body...)

	if item, ok := m.grid.Focused(); ok {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "$ " + item.Command, style: styles.CommandHint})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerHint(), style: styles.Footer})
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// buildBodyLines lays the visible groups out as render lines and
// reports the line index of the focused row, -1 when nothing is
// focused.
func (m *Model) buildBodyLines() ([]styledLine, int) {
	if m.grid.NotFound() {
		text := fmt.Sprintf("No matches for %q", m.editor.Text())
		return []styledLine{{text: text, style: styles.NotFound}}, -1
	}
	columns := m.columns()
	cellWidth := m.catalog.MaxNameWidth()
	ruleWidth := m.width
	if ruleWidth <= 0 {
		ruleWidth = columns*(cellWidth+gridflow.Gap) - gridflow.Gap
	}
	focusGroup, focusItem := m.grid.FocusIndex()
	lines := make([]styledLine, 0, 16)
	focusLine := -1
	for gi, group := range m.grid.Visible() {
		if group.Label != "" {
			lines = append(lines, styledLine{text: groupRule(group.Label, ruleWidth), style: styles.GroupRule})
		}
		rows := gridflow.Rows(len(group.Items), columns)
		for row := 0; row < rows; row++ {
			start := row * columns
			end := start + gridflow.RowWidth(len(group.Items), columns, row)
			focusCol := -1
			if gi == focusGroup {
				if fr, fc := gridflow.Position(focusItem, columns); fr == row {
					focusCol = fc
					focusLine = len(lines)
				}
			}
			lines = append(lines, buildGridRow(group.Items[start:end], focusCol, cellWidth))
		}
	}
	return lines, focusLine
}

// buildGridRow renders one row of cells padded to a common width. The
// result carries its own ANSI styling so it is marked raw.
func buildGridRow(items []menu.Item, focusCol, cellWidth int) styledLine {
	cells := make([]string, len(items))
	for i, item := range items {
		text := runewidth.FillRight(item.Name, cellWidth)
		style := styles.Item
		if i == focusCol {
			style = styles.FocusedItem
		}
		if style != nil {
			text = style.Render(text)
		}
		cells[i] = text
	}
	return styledLine{text: strings.Join(cells, strings.Repeat(" ", gridflow.Gap)), raw: true}
}

// groupRule draws the dashed separator with the group label centred,
// e.g. "---- ops ----".
func groupRule(label string, width int) string {
	remain := width - runewidth.StringWidth(label) - 2
	if remain < 2 {
		remain = 2
	}
	left := remain / 2
	return strings.Repeat("-", left) + " " + label + " " + strings.Repeat("-", remain-left)
}

func (m *Model) footerHint() string {
	parts := []string{"↑/↓/←/→ move"}
	for _, b := range []key.Binding{m.keys.NextGroup, m.keys.Commit, m.keys.Cancel} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// syncScroll clamps the viewport offset and drags it just far enough
// to keep the focused row inside the body window.
func (m *Model) syncScroll(focusLine, total, maxVisible int) {
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	if focusLine < 0 {
		return
	}
	if focusLine < m.scrollOffset {
		m.scrollOffset = focusLine
	}
	if upper := m.scrollOffset + maxVisible - 1; focusLine > upper {
		m.scrollOffset = focusLine - maxVisible + 1
		if m.scrollOffset > maxOffset {
			m.scrollOffset = maxOffset
		}
	}
}

// maxBodyLines returns how many rows remain for the grid once the
// prompt, hint, and footer are accounted for; <= 0 means unlimited.
func (m *Model) maxBodyLines() int {
	if m.height <= 0 {
		return -1
	}
	used := 1 // filter prompt
	if _, ok := m.grid.Focused(); ok {
		used += 2 // blank separator + command hint
	}
	if m.showFooter {
		used += 2 // blank separator + footer
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.Grid.Resize(m.width, m.height, m.columns())
	return nil
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
