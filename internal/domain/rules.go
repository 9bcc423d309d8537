package domain

// ShapeKind categorizes a winning line pattern.
type ShapeKind int

const (
	ShapeRow ShapeKind = iota
	ShapeColumn
	ShapeDiagonal
)

// WinRule configures what one ranked place must complete: either a number of
// complete lines among the allowed shapes, or the full card.
type WinRule struct {
	Place    string // "1st", "2nd", ...
	Lines    int    // complete lines required; ignored when FullCard is set
	FullCard bool
	Allowed  []ShapeKind // line kinds that count; nil means rows and columns
}

// Allows reports whether lines of the given kind count toward this rule.
func (r WinRule) Allows(kind ShapeKind) bool {
	if r.Allowed == nil {
		return kind == ShapeRow || kind == ShapeColumn
	}
	for _, k := range r.Allowed {
		if k == kind {
			return true
		}
	}
	return false
}

// MinRound returns the earliest round at which the rule can possibly be
// satisfied on a size×size card. Crossing lines share a cell, so L lines need
// L×size minus the cells saved by pairing rows with columns; the free center
// saves one more call when a line can run through it.
func (r WinRule) MinRound(size int, freeSpace bool) int {
	free := freeSpace && size%2 == 1
	if r.FullCard {
		if free {
			return size*size - 1
		}
		return size * size
	}
	shared := (r.Lines / 2) * ((r.Lines + 1) / 2)
	min := r.Lines*size - shared
	if free {
		min--
	}
	if min < 1 {
		min = 1
	}
	return min
}

// DefaultRules is the house rule set of the original game nights:
// 1st place one line, 2nd place two lines, 3rd place full card,
// rows and columns only.
func DefaultRules() []WinRule {
	return []WinRule{
		{Place: "1st", Lines: 1},
		{Place: "2nd", Lines: 2},
		{Place: "3rd", FullCard: true},
	}
}

// DiagonalRules is the variant where diagonals count as lines.
func DiagonalRules() []WinRule {
	lineShapes := []ShapeKind{ShapeRow, ShapeColumn, ShapeDiagonal}
	return []WinRule{
		{Place: "1st", Lines: 1, Allowed: lineShapes},
		{Place: "2nd", Lines: 2, Allowed: lineShapes},
		{Place: "3rd", FullCard: true},
	}
}
