package app

import (
	"fmt"

	"musicbingo/internal/domain"
)

// WinnerRecord captures one resolved place in the precomputed schedule.
type WinnerRecord struct {
	Place     string
	CardIndex int
	Round     int
	WinType   string // satisfied shape(s), e.g. "Row 2, Column 3" or "Full Card"
	Item      string // the item called at Round that completed the shape
}

// CardMilestones records, per configured place rule, the first round at which
// a card satisfies that rule regardless of placement. Zero means never.
type CardMilestones struct {
	CardIndex int
	Rounds    []int
}

// simulate plays the call sequence round by round and resolves places strictly
// in rule order. Only the pending place is evaluated each round; same-round
// ties go to the lowest card index, and a placed card never wins again. The
// round after a place resolves is the first round the next place can claim,
// which keeps winner rounds strictly increasing.
//
// The loop runs the sequence to the end even after all places resolve so that
// every card's milestones are recorded for the operator reference sheet.
func simulate(cards []domain.Card, calls domain.CallSequence, rules []domain.WinRule) ([]WinnerRecord, []CardMilestones, error) {
	called := make(domain.CalledSet, len(calls))
	placed := make(map[int]bool, len(rules))
	records := make([]WinnerRecord, 0, len(rules))

	miles := make([]CardMilestones, len(cards))
	for i := range cards {
		miles[i] = CardMilestones{CardIndex: cards[i].Index, Rounds: make([]int, len(rules))}
	}

	next := 0 // pending rule
	for i, item := range calls {
		round := i + 1
		called.Add(item)

		reports := make([]domain.Report, len(cards))
		for c := range cards {
			reports[c] = domain.Evaluate(&cards[c], called)
			for r := range rules {
				if miles[c].Rounds[r] == 0 && reports[c].Satisfies(rules[r]) {
					miles[c].Rounds[r] = round
				}
			}
		}

		if next >= len(rules) {
			continue
		}
		rule := rules[next]

		winner := -1
		for c := range cards {
			if placed[cards[c].Index] || !reports[c].Satisfies(rule) {
				continue
			}
			if winner < 0 || cards[c].Index < cards[winner].Index {
				winner = c
			}
		}
		if winner < 0 {
			continue
		}

		records = append(records, WinnerRecord{
			Place:     rule.Place,
			CardIndex: cards[winner].Index,
			Round:     round,
			WinType:   reports[winner].WinLabel(rule),
			Item:      item,
		})
		placed[cards[winner].Index] = true
		next++
	}

	if next < len(rules) {
		return nil, nil, fmt.Errorf("%w: %s place unresolved after %d rounds",
			ErrInfeasibleSchedule, rules[next].Place, len(calls))
	}
	return records, miles, nil
}
