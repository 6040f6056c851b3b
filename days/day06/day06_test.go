package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestPart1(t *testing.T) {
	got, err := part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 288, got)
}

func TestPart2(t *testing.T) {
	got, err := part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 71503, got)
}

func TestWaysToWinExactRoots(t *testing.T) {
	// Roots at exactly 10 and 20 only tie the record, so the winning
	// holds are 11 through 19.
	assert.Equal(t, 9, waysToWin(race{time: 30, record: 200}))
}

func TestMissingLines(t *testing.T) {
	_, err := part1("Time: 7\n")
	assert.Error(t, err)
}
