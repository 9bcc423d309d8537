package app

import (
	"fmt"

	"go.uber.org/zap"

	"musicbingo/internal/domain"
)

// target is a validated steering constraint bound to a rule slot.
type target struct {
	rule  int // index into the configured rules
	round int
}

// resolveTargets validates the supplied target rounds against the rule set:
// every place must exist, rounds must be strictly increasing in place order,
// each round must be reachable at all for its rule, and no round may exceed
// the pool length.
func resolveTargets(targets []TargetRound, rules []domain.WinRule, size int, free bool, poolLen int) ([]target, error) {
	if len(targets) == 0 {
		return nil, nil
	}

	byRule := make(map[int]int, len(targets))
	for _, t := range targets {
		idx := -1
		for i, r := range rules {
			if r.Place == t.Place {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: target names unknown place %q", ErrInvalidConfig, t.Place)
		}
		if _, dup := byRule[idx]; dup {
			return nil, fmt.Errorf("%w: duplicate target for place %q", ErrInvalidConfig, t.Place)
		}
		byRule[idx] = t.Round
	}

	out := make([]target, 0, len(byRule))
	prev := 0
	for i, rule := range rules {
		round, ok := byRule[i]
		if !ok {
			continue
		}
		if round <= prev {
			return nil, fmt.Errorf("%w: %s place at round %d", ErrInvalidTargetOrder, rule.Place, round)
		}
		if min := rule.MinRound(size, free); round < min {
			return nil, fmt.Errorf("%w: %s place needs at least %d rounds, target is %d",
				ErrInvalidConfig, rule.Place, min, round)
		}
		if round > poolLen {
			return nil, fmt.Errorf("%w: %s place target %d exceeds pool size %d",
				ErrInvalidConfig, rule.Place, round, poolLen)
		}
		out = append(out, target{rule: i, round: round})
		prev = round
	}
	return out, nil
}

// steer re-runs the simulation until every supplied target resolves at exactly
// its requested round. Each failed attempt reshuffles the call sequence; after
// every callAttemptsPerDeck failures the card set is regenerated too, since
// some decks cannot hit the targets under any call order. The total attempt
// budget bounds the search.
func (s *Service) steer(pool *domain.Pool, cfg Config, cards []domain.Card, calls domain.CallSequence,
	rules []domain.WinRule, targets []target) ([]domain.Card, domain.CallSequence, []WinnerRecord, []CardMilestones, error) {

	maxAttempts := s.maxAttempts(cfg)
	perDeck := s.callAttemptsPerDeck(cfg)

	var missed []string
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		records, miles, err := simulate(cards, calls, rules)
		if err == nil {
			missed = missedTargets(records, rules, targets)
			if len(missed) == 0 {
				s.log.Debug("steering satisfied", zap.Int("attempt", attempt))
				return cards, calls, records, miles, nil
			}
		} else {
			// An infeasible deck misses every target by definition.
			missed = placeNames(rules, targets)
		}
		s.log.Debug("steering attempt failed",
			zap.Int("attempt", attempt),
			zap.Strings("missed", missed))

		if attempt%perDeck == 0 {
			cards, err = s.GenerateCards(pool, cfg.CardCount, cfg.CardSize, cfg.FreeSpace)
			if err != nil {
				return nil, nil, nil, nil, err
			}
		}
		calls, err = s.NewCallSequence(pool)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}

	return nil, nil, nil, nil, &TargetUnreachableError{Places: missed, Attempts: maxAttempts}
}

// missedTargets lists the places whose natural resolution round differs from
// the requested one, in place order.
func missedTargets(records []WinnerRecord, rules []domain.WinRule, targets []target) []string {
	var missed []string
	for _, t := range targets {
		place := rules[t.rule].Place
		hit := false
		for _, rec := range records {
			if rec.Place == place && rec.Round == t.round {
				hit = true
				break
			}
		}
		if !hit {
			missed = append(missed, place)
		}
	}
	return missed
}

func placeNames(rules []domain.WinRule, targets []target) []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = rules[t.rule].Place
	}
	return names
}
