// Package gridflow holds the row-major flow-layout arithmetic shared by
// grid navigation and rendering: uniform-width cells flow left to right
// into rows, with a fixed gap between columns.
package gridflow

// Gap is the number of blank cells between grid columns.
const Gap = 1

// Columns reports how many cells of cellWidth fit into a total width,
// Gap included. Always at least 1 so narrow terminals degrade to a
// single-column list.
func Columns(total, cellWidth int) int {
	if cellWidth <= 0 {
		return 1
	}
	cols := (total + Gap) / (cellWidth + Gap)
	if cols < 1 {
		return 1
	}
	return cols
}

// Rows reports how many rows n cells occupy at the given column count.
func Rows(n, columns int) int {
	if n <= 0 || columns <= 0 {
		return 0
	}
	return (n + columns - 1) / columns
}

// Position converts a cell index into row/column coordinates.
func Position(index, columns int) (row, col int) {
	if columns <= 0 {
		return 0, 0
	}
	return index / columns, index % columns
}

// Index converts row/column coordinates back into a cell index.
func Index(row, col, columns int) int {
	return row*columns + col
}

// RowWidth reports how many cells sit on a given row; the final row of
// a group may be shorter than the column count.
func RowWidth(n, columns, row int) int {
	if n <= 0 || columns <= 0 || row < 0 || row >= Rows(n, columns) {
		return 0
	}
	if row < n/columns {
		return columns
	}
	if rem := n % columns; rem > 0 {
		return rem
	}
	return columns
}
