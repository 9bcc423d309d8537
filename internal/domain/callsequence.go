package domain

// CallSequence is the order items are called during one game, one per round.
type CallSequence []string

// CalledSet tracks the items called so far in a simulation.
type CalledSet map[string]struct{}

// Add marks an item as called.
func (s CalledSet) Add(item string) {
	s[item] = struct{}{}
}

// Has reports whether an item has been called.
func (s CalledSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}
