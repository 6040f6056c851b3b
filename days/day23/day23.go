// Package day23 finds the longest hike through the trail maze: part one
// respects the slippery slope tiles, part two treats them as paths and
// works on the contracted junction graph instead of raw tiles.
package day23

import (
	"fmt"
	"strings"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            23,
		Title:        "A Long Walk",
		DefaultInput: "inputs/day23.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

var slopes = map[byte]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

func parse(input string) (g aoc.Grid[byte], start, end aoc.Pt, err error) {
	g = aoc.ParseGrid(input)
	if len(g) < 2 {
		return nil, aoc.Pt{}, aoc.Pt{}, fmt.Errorf("no trail map in input")
	}
	sx := strings.IndexByte(string(g[0]), '.')
	ex := strings.IndexByte(string(g[len(g)-1]), '.')
	if sx < 0 || ex < 0 {
		return nil, aoc.Pt{}, aoc.Pt{}, fmt.Errorf("trail map has no start or end opening")
	}
	return g, aoc.Pt{X: sx, Y: 0}, aoc.Pt{X: ex, Y: len(g) - 1}, nil
}

// longestSloped walks the maze tile by tile, following slope arrows,
// and returns the longest step count from p to end.
func longestSloped(g aoc.Grid[byte], p, end aoc.Pt, visited map[aoc.Pt]bool) (int, bool) {
	if p == end {
		return 0, true
	}
	visited[p] = true
	defer delete(visited, p)

	dirs := []aoc.Direction{aoc.Up, aoc.Right, aoc.Down, aoc.Left}
	if d, ok := slopes[g.At(p)]; ok {
		dirs = []aoc.Direction{d}
	}

	best, found := -1, false
	for _, d := range dirs {
		next, ok := g.Move(aoc.Path{Pt: p, Dir: d})
		if !ok || visited[next.Pt] || g.At(next.Pt) == '#' {
			continue
		}
		if steps, ok := longestSloped(g, next.Pt, end, visited); ok && steps+1 > best {
			best, found = steps+1, true
		}
	}
	return best, found
}

func part1(input string) (any, error) {
	g, start, end, err := parse(input)
	if err != nil {
		return nil, err
	}
	steps, ok := longestSloped(g, start, end, make(map[aoc.Pt]bool))
	if !ok {
		return nil, fmt.Errorf("no path from %v to %v", start, end)
	}
	return steps, nil
}

func part2(input string) (any, error) {
	g, start, end, err := parse(input)
	if err != nil {
		return nil, err
	}
	// Slopes become ordinary path tiles; the maze is mostly corridors,
	// so contract it to its junctions before the exhaustive search.
	graph := g.ToGraph(start, false, func(c byte) bool { return c == '#' })
	steps, ok := graph.LongestPath(start, end)
	if !ok {
		return nil, fmt.Errorf("no path from %v to %v", start, end)
	}
	return steps, nil
}
