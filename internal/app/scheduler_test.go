package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicbingo/internal/domain"
)

var nineItems = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

// threeCards builds three 3×3 grids whose first rows all complete at round 3
// of the A..I call order, exercising the lowest-index tie-break.
func threeCards() []domain.Card {
	return []domain.Card{
		domain.NewCard(0, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}, 3, false),
		domain.NewCard(1, []string{"B", "A", "C", "E", "D", "F", "H", "G", "I"}, 3, false),
		domain.NewCard(2, []string{"C", "B", "A", "F", "E", "D", "I", "H", "G"}, 3, false),
	}
}

func TestSimulateResolvesPlacesInOrder(t *testing.T) {
	calls := domain.CallSequence(nineItems)
	records, miles, err := simulate(threeCards(), calls, domain.DefaultRules())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, WinnerRecord{Place: "1st", CardIndex: 0, Round: 3, WinType: "Row 1", Item: "C"}, records[0])
	assert.Equal(t, WinnerRecord{Place: "2nd", CardIndex: 1, Round: 6, WinType: "Row 1, Row 2", Item: "F"}, records[1])
	assert.Equal(t, WinnerRecord{Place: "3rd", CardIndex: 2, Round: 9, WinType: "Full Card", Item: "I"}, records[2])

	// Every card reaches each milestone at the same rounds here.
	require.Len(t, miles, 3)
	for _, m := range miles {
		assert.Equal(t, []int{3, 6, 9}, m.Rounds, "card %d milestones", m.CardIndex)
	}
}

func TestSimulateTieBreakIgnoresSliceOrder(t *testing.T) {
	cards := threeCards()
	reversed := []domain.Card{cards[2], cards[1], cards[0]}

	records, _, err := simulate(reversed, domain.CallSequence(nineItems), domain.DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, 0, records[0].CardIndex, "lowest card index must win the tie")
}

func TestSimulatePassedOverCardStaysEligible(t *testing.T) {
	// Card 1 ties for 1st at round 3 and loses the tie-break, then takes 2nd.
	records, _, err := simulate(threeCards(), domain.CallSequence(nineItems), domain.DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, 1, records[1].CardIndex)
}

func TestSimulateExclusivity(t *testing.T) {
	records, _, err := simulate(threeCards(), domain.CallSequence(nineItems), domain.DefaultRules())
	require.NoError(t, err)

	rounds := make(map[int]bool)
	cards := make(map[int]bool)
	prev := 0
	for _, rec := range records {
		assert.False(t, rounds[rec.Round], "round %d used twice", rec.Round)
		assert.False(t, cards[rec.CardIndex], "card %d placed twice", rec.CardIndex)
		assert.Greater(t, rec.Round, prev, "rounds must increase in place order")
		rounds[rec.Round] = true
		cards[rec.CardIndex] = true
		prev = rec.Round
	}
}

func TestSimulateInfeasibleWhenCardsRunOut(t *testing.T) {
	single := threeCards()[:1]
	_, _, err := simulate(single, domain.CallSequence(nineItems), domain.DefaultRules())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInfeasibleSchedule))
	assert.Contains(t, err.Error(), "2nd")
}

func TestSimulateDiagonalRules(t *testing.T) {
	cards := []domain.Card{
		domain.NewCard(0, []string{"E", "B", "C", "D", "A", "F", "G", "H", "I"}, 3, false),
	}
	// E, A, I completes the ↘ diagonal of card 0 at round 3.
	calls := domain.CallSequence{"E", "A", "I", "B", "C", "D", "F", "G", "H"}

	records, _, err := simulate(cards, calls, domain.DiagonalRules()[:1])
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Diagonal ↘", records[0].WinType)
	assert.Equal(t, 3, records[0].Round)

	// The same board never satisfies the rows-and-columns-only rule set by
	// round 3.
	records, _, err = simulate(cards, calls, domain.DefaultRules()[:1])
	require.NoError(t, err)
	assert.Greater(t, records[0].Round, 3)
}
