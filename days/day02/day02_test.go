package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestPart1(t *testing.T) {
	got, err := part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestPart2(t *testing.T) {
	got, err := part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 2286, got)
}

func TestMalformed(t *testing.T) {
	_, err := part1("Game 1: 3 purple\n")
	assert.Error(t, err)

	_, err = part1("not a game line\n")
	assert.Error(t, err)
}
