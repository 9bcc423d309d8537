package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableSortsByRound(t *testing.T) {
	records := []WinnerRecord{
		{Place: "3rd", CardIndex: 2, Round: 24},
		{Place: "1st", CardIndex: 0, Round: 7},
		{Place: "2nd", CardIndex: 1, Round: 13},
	}

	table, err := BuildTable(records, 3)
	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.Equal(t, []int{7, 13, 24}, []int{table[0].Round, table[1].Round, table[2].Round})
	assert.Equal(t, "1st", table[0].Place)

	// The input slice is left untouched.
	assert.Equal(t, "3rd", records[0].Place)
}

func TestBuildTableIncomplete(t *testing.T) {
	records := []WinnerRecord{{Place: "1st", CardIndex: 0, Round: 7}}

	_, err := BuildTable(records, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompleteSchedule))
}
