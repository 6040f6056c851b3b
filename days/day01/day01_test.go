package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const sample2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestPart1(t *testing.T) {
	got, err := part1(sample1)
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestPart2(t *testing.T) {
	got, err := part2(sample2)
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestPart2Overlap(t *testing.T) {
	// Overlapping words must both count: "eightwo" is 8...2.
	got, err := part2("eightwo\n")
	require.NoError(t, err)
	assert.Equal(t, 82, got)
}

func TestNoDigits(t *testing.T) {
	_, err := part1("abcdef\n")
	assert.Error(t, err)
}

func TestEmptyInput(t *testing.T) {
	_, err := part1("")
	assert.Error(t, err)
}
