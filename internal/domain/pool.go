package domain

import "strings"

// Pool is the validated, deduplicated list of callable items for one game.
// Display forms are preserved; duplicate detection trims and case-folds.
type Pool struct {
	items []string
}

// NewPool builds a pool from raw titles, dropping blanks and duplicates while
// keeping first-seen order and display form.
func NewPool(titles []string) *Pool {
	seen := make(map[string]struct{}, len(titles))
	items := make([]string, 0, len(titles))
	for _, t := range titles {
		display := strings.TrimSpace(t)
		if display == "" {
			continue
		}
		key := strings.ToLower(display)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, display)
	}
	return &Pool{items: items}
}

// Len returns the number of distinct items in the pool.
func (p *Pool) Len() int {
	return len(p.items)
}

// Items returns a copy of the pool in its original order.
func (p *Pool) Items() []string {
	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}
