package domain

import (
	"fmt"
	"strings"
)

// Line is one complete row, column or diagonal on a card.
type Line struct {
	Kind  ShapeKind
	Index int // row/column index; for diagonals 0 = ↘ and 1 = ↗
}

// Label returns the operator-facing name of the line.
func (l Line) Label() string {
	switch l.Kind {
	case ShapeRow:
		return fmt.Sprintf("Row %d", l.Index+1)
	case ShapeColumn:
		return fmt.Sprintf("Column %d", l.Index+1)
	default:
		if l.Index == 0 {
			return "Diagonal ↘"
		}
		return "Diagonal ↗"
	}
}

// Report is the outcome of evaluating one card against the called set.
// Lines are always in a fixed order: rows ascending, columns ascending,
// then diagonals ↘ before ↗.
type Report struct {
	Lines    []Line
	FullCard bool
}

// Evaluate scans the whole card against the called items. The free center
// cell always counts as called.
func Evaluate(c *Card, called CalledSet) Report {
	size := c.Size()
	var rep Report

	for i := 0; i < size; i++ {
		complete := true
		for j := 0; j < size; j++ {
			if !cellCalled(c, i, j, called) {
				complete = false
				break
			}
		}
		if complete {
			rep.Lines = append(rep.Lines, Line{Kind: ShapeRow, Index: i})
		}
	}

	for j := 0; j < size; j++ {
		complete := true
		for i := 0; i < size; i++ {
			if !cellCalled(c, i, j, called) {
				complete = false
				break
			}
		}
		if complete {
			rep.Lines = append(rep.Lines, Line{Kind: ShapeColumn, Index: j})
		}
	}

	down, up := true, true
	for i := 0; i < size; i++ {
		if !cellCalled(c, i, i, called) {
			down = false
		}
		if !cellCalled(c, i, size-1-i, called) {
			up = false
		}
	}
	if down {
		rep.Lines = append(rep.Lines, Line{Kind: ShapeDiagonal, Index: 0})
	}
	if up {
		rep.Lines = append(rep.Lines, Line{Kind: ShapeDiagonal, Index: 1})
	}

	rep.FullCard = true
	for i := 0; i < size && rep.FullCard; i++ {
		for j := 0; j < size; j++ {
			if !cellCalled(c, i, j, called) {
				rep.FullCard = false
				break
			}
		}
	}

	return rep
}

// Satisfies reports whether the evaluated card meets the rule's requirement.
func (rep Report) Satisfies(rule WinRule) bool {
	if rule.FullCard {
		return rep.FullCard
	}
	count := 0
	for _, l := range rep.Lines {
		if rule.Allows(l.Kind) {
			count++
		}
	}
	return count >= rule.Lines
}

// WinLabel describes the shapes that satisfied the rule, e.g. "Row 2" or
// "Row 2, Column 3" for a two-line rule, or "Full Card". Lines are listed in
// scan order, so the label is deterministic for a given board state.
func (rep Report) WinLabel(rule WinRule) string {
	if rule.FullCard {
		return "Full Card"
	}
	labels := make([]string, 0, rule.Lines)
	for _, l := range rep.Lines {
		if !rule.Allows(l.Kind) {
			continue
		}
		labels = append(labels, l.Label())
		if len(labels) == rule.Lines {
			break
		}
	}
	return strings.Join(labels, ", ")
}

func cellCalled(c *Card, row, col int, called CalledSet) bool {
	return c.IsFree(row, col) || called.Has(c.Cells[row][col])
}
