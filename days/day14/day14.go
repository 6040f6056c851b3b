// Package day14 tilts the parabolic dish platform and measures the load
// on the north support beams. Part two runs a billion spin cycles,
// shortcut by detecting when the rock layout starts repeating.
package day14

import (
	"fmt"

	"tailscale.com/util/deephash"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            14,
		Title:        "Parabolic Reflector Dish",
		DefaultInput: "inputs/day14.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

const targetCycles = 1_000_000_000

// tiltNorth rolls every round rock as far north as it can go, in place.
func tiltNorth(g aoc.Grid[byte]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		free := 0 // northernmost row a rock in this column can reach
		for y := 0; y < size.Y; y++ {
			switch g[y][x] {
			case 'O':
				g[y][x] = '.'
				g[free][x] = 'O'
				free++
			case '#':
				free = y + 1
			}
		}
	}
}

// spinCycle tilts north, west, south and east once. Tilting any
// direction is tilting north after rotating the dish, so one cycle is
// four tilt-and-rotate steps, which also leaves the grid facing north.
func spinCycle(g aoc.Grid[byte]) aoc.Grid[byte] {
	for i := 0; i < 4; i++ {
		tiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

func northLoad(g aoc.Grid[byte]) int {
	load := 0
	for y, row := range g {
		for _, c := range row {
			if c == 'O' {
				load += len(g) - y
			}
		}
	}
	return load
}

func parse(input string) (aoc.Grid[byte], error) {
	g := aoc.ParseGrid(input)
	if len(g) == 0 {
		return nil, fmt.Errorf("no platform in input")
	}
	return g, nil
}

func part1(input string) (any, error) {
	g, err := parse(input)
	if err != nil {
		return nil, err
	}
	tiltNorth(g)
	return northLoad(g), nil
}

func part2(input string) (any, error) {
	g, err := parse(input)
	if err != nil {
		return nil, err
	}
	seen := make(map[deephash.Sum]int)
	loads := make(map[int]int)
	for cycle := 1; cycle <= targetCycles; cycle++ {
		g = spinCycle(g)
		h := g.Hash()
		if prev, ok := seen[h]; ok {
			period := cycle - prev
			rem := (targetCycles - prev) % period
			return loads[prev+rem], nil
		}
		seen[h] = cycle
		loads[cycle] = northLoad(g)
	}
	return northLoad(g), nil
}
