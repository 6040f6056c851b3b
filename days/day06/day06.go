// Package day06 counts the hold times that beat each boat race record.
//
// Holding the button for t out of T milliseconds travels t*(T-t)
// millimeters, so the winning hold times are the integer points where
// -t^2 + T*t - record is positive, bounded by the roots of that
// quadratic.
package day06

import (
	"fmt"
	"math"
	"strings"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            6,
		Title:        "Wait For It",
		DefaultInput: "inputs/day06.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

type race struct {
	time, record int
}

func parseLines(input string) (times, dists []string, err error) {
	lines := aoc.Lines(input)
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("expected a Time and a Distance line")
	}
	_, t, ok1 := strings.Cut(lines[0], ":")
	_, d, ok2 := strings.Cut(lines[1], ":")
	if !ok1 || !ok2 {
		return nil, nil, fmt.Errorf("malformed race table")
	}
	return strings.Fields(t), strings.Fields(d), nil
}

// waysToWin counts hold times that travel strictly farther than the
// record. Exact-integer roots only tie the record and do not count.
func waysToWin(r race) int {
	lo, hi := aoc.SolveQuad(-1, r.time, -r.record)
	first := int(math.Floor(lo)) + 1
	last := int(math.Ceil(hi)) - 1
	if last < first {
		return 0
	}
	return last - first + 1
}

func part1(input string) (any, error) {
	times, dists, err := parseLines(input)
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) || len(times) == 0 {
		return nil, fmt.Errorf("mismatched race table: %d times, %d distances", len(times), len(dists))
	}
	prod := 1
	for i := range times {
		prod *= waysToWin(race{time: aoc.Int(times[i]), record: aoc.Int(dists[i])})
	}
	return prod, nil
}

func part2(input string) (any, error) {
	times, dists, err := parseLines(input)
	if err != nil {
		return nil, err
	}
	// Bad kerning: the columns merge into one long race.
	r := race{
		time:   aoc.Int(strings.Join(times, "")),
		record: aoc.Int(strings.Join(dists, "")),
	}
	return waysToWin(r), nil
}
