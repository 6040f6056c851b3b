package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func TestPart1(t *testing.T) {
	got, err := part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestPart2(t *testing.T) {
	got, err := part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 51, got)
}

func TestEmptyInput(t *testing.T) {
	_, err := part1("")
	assert.Error(t, err)
}
