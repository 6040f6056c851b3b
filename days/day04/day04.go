// Package day04 scores scratchcards against their winning numbers and
// follows the cascading copy rule of part two.
package day04

import (
	"fmt"
	"strings"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            4,
		Title:        "Scratchcards",
		DefaultInput: "inputs/day04.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

// matches counts, per card in input order, how many of the card's own
// numbers appear among its winning numbers.
func matches(input string) ([]int, error) {
	var out []int
	for _, line := range aoc.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		_, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("missing card header in %q", line)
		}
		winStr, haveStr, ok := strings.Cut(rest, "|")
		if !ok {
			return nil, fmt.Errorf("missing number separator in %q", line)
		}
		winning := make(map[int]bool)
		for _, n := range aoc.Ints(strings.Fields(winStr)...) {
			winning[n] = true
		}
		m := 0
		for _, n := range aoc.Ints(strings.Fields(haveStr)...) {
			if winning[n] {
				m++
			}
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no cards in input")
	}
	return out, nil
}

func part1(input string) (any, error) {
	ms, err := matches(input)
	if err != nil {
		return nil, err
	}
	points := 0
	for _, m := range ms {
		if m > 0 {
			points += 1 << (m - 1)
		}
	}
	return points, nil
}

func part2(input string) (any, error) {
	ms, err := matches(input)
	if err != nil {
		return nil, err
	}
	copies := make([]int, len(ms))
	for i := range copies {
		copies[i] = 1
	}
	for i, m := range ms {
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...), nil
}
