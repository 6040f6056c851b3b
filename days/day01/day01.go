// Package day01 recovers the calibration values hidden in each line of
// the trebuchet calibration document.
package day01

import (
	"fmt"
	"strings"

	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            1,
		Title:        "Trebuchet?!",
		DefaultInput: "inputs/day01.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// numberAt returns the digit starting at position i of line, either a
// literal digit or, when spelled is true, a spelled-out one. Spelled
// digits may overlap ("eightwo" yields 8 then 2).
func numberAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if spelled {
		for w, word := range words {
			if strings.HasPrefix(line[i:], word) {
				return w + 1, true
			}
		}
	}
	return 0, false
}

func calibration(line string, spelled bool) (int, bool) {
	first, last := -1, -1
	for i := range line {
		if v, ok := numberAt(line, i, spelled); ok {
			if first == -1 {
				first = v
			}
			last = v
		}
	}
	if first == -1 {
		return 0, false
	}
	return 10*first + last, true
}

func solve(input string, spelled bool) (any, error) {
	sum, n := 0, 0
	for idx, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, ok := calibration(line, spelled)
		if !ok {
			return nil, fmt.Errorf("no calibration value in line %d: %q", idx+1, line)
		}
		sum += v
		n++
	}
	if n == 0 {
		return nil, fmt.Errorf("no calibration lines in input")
	}
	return sum, nil
}

func part1(input string) (any, error) {
	return solve(input, false)
}

func part2(input string) (any, error) {
	return solve(input, true)
}
