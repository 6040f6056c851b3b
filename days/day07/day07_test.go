package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestPart1(t *testing.T) {
	got, err := part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 6440, got)
}

func TestPart2(t *testing.T) {
	got, err := part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 5905, got)
}

func TestCategory(t *testing.T) {
	tests := []struct {
		cards string
		joker bool
		want  int
	}{
		{"AAAAA", false, fiveOfAKind},
		{"AA8AA", false, fourOfAKind},
		{"23332", false, fullHouse},
		{"TTT98", false, threeOfAKind},
		{"23432", false, twoPair},
		{"A23A4", false, onePair},
		{"23456", false, highCard},
		{"QJJQ2", true, fourOfAKind},
		{"JJJJJ", true, fiveOfAKind},
		{"2233J", true, fullHouse},
		{"QJJQ2", false, twoPair},
	}
	for _, tt := range tests {
		if got := category(tt.cards, tt.joker); got != tt.want {
			t.Errorf("category(%q, joker=%v) = %v, want %v", tt.cards, tt.joker, got, tt.want)
		}
	}
}

func TestMalformedHand(t *testing.T) {
	_, err := part1("AAAA 12\n")
	assert.Error(t, err)

	_, err = part1("AAAXA 12\n")
	assert.Error(t, err)
}
