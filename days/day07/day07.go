// Package day07 ranks Camel Cards hands and sums the rank-weighted bids.
package day07

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            7,
		Title:        "Camel Cards",
		DefaultInput: "inputs/day07.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

// Hand categories from weakest to strongest.
const (
	highCard = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

var strength = map[byte]int{
	'2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'T': 10, 'J': 11, 'Q': 12, 'K': 13, 'A': 14,
}

const jokerStrength = 1

type hand struct {
	cards string
	bid   int
}

func parseHands(input string) ([]hand, error) {
	var hands []hand
	for _, line := range aoc.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cards, bid, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			return nil, fmt.Errorf("malformed hand %q", line)
		}
		for i := 0; i < 5; i++ {
			if _, ok := strength[cards[i]]; !ok {
				return nil, fmt.Errorf("unknown card %q in hand %q", cards[i], cards)
			}
		}
		hands = append(hands, hand{cards: cards, bid: aoc.Int(bid)})
	}
	if len(hands) == 0 {
		return nil, fmt.Errorf("no hands in input")
	}
	return hands, nil
}

// category classifies a hand. With joker set, J cards count toward
// whichever group is already largest.
func category(cards string, joker bool) int {
	counts := make(map[byte]int)
	jokers := 0
	for i := 0; i < len(cards); i++ {
		if joker && cards[i] == 'J' {
			jokers++
			continue
		}
		counts[cards[i]]++
	}
	groups := maps.Values(counts)
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0} // five jokers
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}

func cardValue(c byte, joker bool) int {
	if joker && c == 'J' {
		return jokerStrength
	}
	return strength[c]
}

// compare orders hands weakest first: by category, then card by card
// in the original order.
func compare(a, b hand, joker bool) int {
	if d := category(a.cards, joker) - category(b.cards, joker); d != 0 {
		return d
	}
	for i := 0; i < 5; i++ {
		if d := cardValue(a.cards[i], joker) - cardValue(b.cards[i], joker); d != 0 {
			return d
		}
	}
	return 0
}

func totalWinnings(input string, joker bool) (any, error) {
	hands, err := parseHands(input)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(hands, func(a, b hand) int { return compare(a, b, joker) })
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total, nil
}

func part1(input string) (any, error) {
	return totalWinnings(input, false)
}

func part2(input string) (any, error) {
	return totalWinnings(input, true)
}
