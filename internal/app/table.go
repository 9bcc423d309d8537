package app

import (
	"fmt"
	"sort"
)

// OperatorTable is the precomputed winner schedule the operator runs a live
// game from, ordered by round.
type OperatorTable []WinnerRecord

// BuildTable projects winner records into the operator table. It fails when
// the scheduler did not resolve every configured place.
func BuildTable(records []WinnerRecord, places int) (OperatorTable, error) {
	if len(records) < places {
		return nil, fmt.Errorf("%w: have %d of %d places", ErrIncompleteSchedule, len(records), places)
	}
	table := make(OperatorTable, len(records))
	copy(table, records)
	sort.SliceStable(table, func(i, j int) bool { return table[i].Round < table[j].Round })
	return table, nil
}
