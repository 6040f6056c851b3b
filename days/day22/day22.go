// Package day22 settles a snapshot of falling sand bricks and works out
// which bricks can be disintegrated safely, then how many bricks each
// single removal would send falling.
package day22

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            22,
		Title:        "Sand Slabs",
		DefaultInput: "inputs/day22.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

// brick spans the inclusive box between min and max; bricks are straight
// lines, so at most one axis differs.
type brick struct {
	min, max aoc.Pt3Int
}

// cells calls f for every xy column the brick covers.
func (b brick) cells(f func(aoc.Pt)) {
	for x := b.min.X; x <= b.max.X; x++ {
		for y := b.min.Y; y <= b.max.Y; y++ {
			f(aoc.Pt{X: x, Y: y})
		}
	}
}

func parseBricks(input string) ([]brick, error) {
	var bricks []brick
	for _, line := range aoc.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, b, ok := strings.Cut(line, "~")
		if !ok {
			return nil, fmt.Errorf("malformed brick %q", line)
		}
		lo, hi := strings.Split(a, ","), strings.Split(b, ",")
		if len(lo) != 3 || len(hi) != 3 {
			return nil, fmt.Errorf("malformed brick %q", line)
		}
		br := brick{
			min: aoc.Pt3Int{X: aoc.Int(lo[0]), Y: aoc.Int(lo[1]), Z: aoc.Int(lo[2])},
			max: aoc.Pt3Int{X: aoc.Int(hi[0]), Y: aoc.Int(hi[1]), Z: aoc.Int(hi[2])},
		}
		if br.min.X > br.max.X || br.min.Y > br.max.Y || br.min.Z > br.max.Z {
			br.min, br.max = aoc.Pt3Int{
				X: min(br.min.X, br.max.X),
				Y: min(br.min.Y, br.max.Y),
				Z: min(br.min.Z, br.max.Z),
			}, aoc.Pt3Int{
				X: max(br.min.X, br.max.X),
				Y: max(br.min.Y, br.max.Y),
				Z: max(br.min.Z, br.max.Z),
			}
		}
		if br.min.Z < 1 {
			return nil, fmt.Errorf("brick below ground: %q", line)
		}
		bricks = append(bricks, br)
	}
	if len(bricks) == 0 {
		return nil, fmt.Errorf("no bricks in input")
	}
	return bricks, nil
}

// settle drops every brick as far down as it can go and returns, per
// brick, the set of bricks directly beneath it that it rests on.
// The returned supporters are indices into the reordered brick slice.
func settle(bricks []brick) (settled []brick, supporters []map[int]bool) {
	settled = slices.Clone(bricks)
	slices.SortFunc(settled, func(a, b brick) int { return a.min.Z - b.min.Z })

	type column struct {
		top   int // highest occupied z in this column
		brick int // index of the brick occupying it
	}
	heights := make(map[aoc.Pt]column)
	supporters = make([]map[int]bool, len(settled))

	for i := range settled {
		b := &settled[i]
		base := 0
		b.cells(func(p aoc.Pt) {
			if c, ok := heights[p]; ok && c.top > base {
				base = c.top
			}
		})

		sup := make(map[int]bool)
		b.cells(func(p aoc.Pt) {
			if c, ok := heights[p]; ok && c.top == base && base > 0 {
				sup[c.brick] = true
			}
		})
		supporters[i] = sup

		drop := b.min.Z - (base + 1)
		b.min.Z -= drop
		b.max.Z -= drop
		b.cells(func(p aoc.Pt) {
			heights[p] = column{top: b.max.Z, brick: i}
		})
	}
	return settled, supporters
}

func part1(input string) (any, error) {
	bricks, err := parseBricks(input)
	if err != nil {
		return nil, err
	}
	_, supporters := settle(bricks)

	// A brick is load-bearing if it is the sole supporter of any brick.
	loadBearing := make(map[int]bool)
	for _, sup := range supporters {
		if len(sup) == 1 {
			for b := range sup {
				loadBearing[b] = true
			}
		}
	}
	return len(bricks) - len(loadBearing), nil
}

func part2(input string) (any, error) {
	bricks, err := parseBricks(input)
	if err != nil {
		return nil, err
	}
	settled, supporters := settle(bricks)

	total := 0
	for i := range settled {
		falling := make(map[int]bool)
		falling[i] = true
		// Bricks settle in z order, so one pass over the remainder
		// catches every chain reaction.
		for j := i + 1; j < len(settled); j++ {
			if len(supporters[j]) == 0 {
				continue // on the ground
			}
			all := true
			for s := range supporters[j] {
				if !falling[s] {
					all = false
					break
				}
			}
			if all {
				falling[j] = true
			}
		}
		total += len(falling) - 1
	}
	return total, nil
}
