package domain

import "strings"

// FreeSpace is the always-called center cell on odd-sized cards.
const FreeSpace = "FREE SPACE"

// Card is one printed bingo grid identified by a unique index.
type Card struct {
	Index int
	Cells [][]string
}

// NewCard lays the given items onto a size×size grid in order, reserving the
// center cell for the free space when requested. With a free space the caller
// supplies size²−1 items, otherwise size².
func NewCard(index int, items []string, size int, freeSpace bool) Card {
	cells := make([][]string, size)
	center := size / 2
	next := 0
	for i := 0; i < size; i++ {
		row := make([]string, size)
		for j := 0; j < size; j++ {
			if freeSpace && i == center && j == center {
				row[j] = FreeSpace
				continue
			}
			row[j] = items[next]
			next++
		}
		cells[i] = row
	}
	return Card{Index: index, Cells: cells}
}

// Size returns the grid dimension.
func (c *Card) Size() int {
	return len(c.Cells)
}

// IsFree reports whether the cell is the free space.
func (c *Card) IsFree(row, col int) bool {
	return c.Cells[row][col] == FreeSpace
}

// Signature returns a cell-for-cell identity key used to detect duplicate grids.
func (c *Card) Signature() string {
	var b strings.Builder
	for _, row := range c.Cells {
		b.WriteString(strings.Join(row, "\x1f"))
		b.WriteByte('\x1e')
	}
	return b.String()
}
