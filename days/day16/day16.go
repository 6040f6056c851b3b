// Package day16 traces a light beam through a grid of mirrors and
// splitters and counts the energized tiles.
package day16

import (
	"fmt"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            16,
		Title:        "The Floor Will Be Lava",
		DefaultInput: "inputs/day16.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

// outgoing returns the directions a beam travelling in dir leaves a
// tile through.
func outgoing(tile byte, dir aoc.Direction) []aoc.Direction {
	switch tile {
	case '/':
		switch dir {
		case aoc.Up:
			return []aoc.Direction{aoc.Right}
		case aoc.Right:
			return []aoc.Direction{aoc.Up}
		case aoc.Down:
			return []aoc.Direction{aoc.Left}
		default:
			return []aoc.Direction{aoc.Down}
		}
	case '\\':
		switch dir {
		case aoc.Up:
			return []aoc.Direction{aoc.Left}
		case aoc.Left:
			return []aoc.Direction{aoc.Up}
		case aoc.Down:
			return []aoc.Direction{aoc.Right}
		default:
			return []aoc.Direction{aoc.Down}
		}
	case '|':
		if dir == aoc.Left || dir == aoc.Right {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if dir == aoc.Up || dir == aoc.Down {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{dir}
}

// energized counts the tiles at least one beam passes through when a
// beam enters the grid on the given path.
func energized(g aoc.Grid[byte], start aoc.Path) int {
	seen := make(map[aoc.Path]bool)
	var pending aoc.Stack[aoc.Path]
	pending.Push(start)
	pending.While(func(p aoc.Path) bool {
		if seen[p] {
			return true
		}
		seen[p] = true
		for _, dir := range outgoing(g.At(p.Pt), p.Dir) {
			if next, ok := g.Move(aoc.Path{Pt: p.Pt, Dir: dir}); ok {
				pending.Push(next)
			}
		}
		return true
	})

	tiles := make(map[aoc.Pt]bool)
	for p := range seen {
		tiles[p.Pt] = true
	}
	return len(tiles)
}

func parse(input string) (aoc.Grid[byte], error) {
	g := aoc.ParseGrid(input)
	if len(g) == 0 {
		return nil, fmt.Errorf("no contraption in input")
	}
	return g, nil
}

func part1(input string) (any, error) {
	g, err := parse(input)
	if err != nil {
		return nil, err
	}
	return energized(g, aoc.Path{Pt: aoc.Pt{X: 0, Y: 0}, Dir: aoc.Right}), nil
}

func part2(input string) (any, error) {
	g, err := parse(input)
	if err != nil {
		return nil, err
	}
	best := 0
	for _, start := range g.EdgePaths() {
		best = max(best, energized(g, start))
	}
	return best, nil
}
