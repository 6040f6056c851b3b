// Package day13 locates the line of reflection in each ash-and-rock
// pattern; part two requires the reflection with exactly one smudge.
package day13

import (
	"fmt"
	"strings"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            13,
		Title:        "Point of Incidence",
		DefaultInput: "inputs/day13.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

// rowDiffs counts the positional differences between two rows.
func rowDiffs(a, b []byte) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// mirrorRow returns the number of rows above the horizontal reflection
// whose total mismatch count is exactly smudges, or 0 if there is none.
func mirrorRow(g aoc.Grid[byte], smudges int) int {
	for split := 1; split < len(g); split++ {
		diffs := 0
		for k := 0; split-1-k >= 0 && split+k < len(g); k++ {
			diffs += rowDiffs(g[split-1-k], g[split+k])
			if diffs > smudges {
				break
			}
		}
		if diffs == smudges {
			return split
		}
	}
	return 0
}

func summarize(input string, smudges int) (any, error) {
	sum, patterns := 0, 0
	for _, block := range aoc.Blocks(input) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		g := aoc.ParseGrid(block)
		if len(g) == 0 {
			continue
		}
		row := mirrorRow(g, smudges)
		col := mirrorRow(g.Transpose(), smudges)
		if row == 0 && col == 0 {
			return nil, fmt.Errorf("pattern has no reflection:\n%s", block)
		}
		sum += 100*row + col
		patterns++
	}
	if patterns == 0 {
		return nil, fmt.Errorf("no patterns in input")
	}
	return sum, nil
}

func part1(input string) (any, error) {
	return summarize(input, 0)
}

func part2(input string) (any, error) {
	return summarize(input, 1)
}
