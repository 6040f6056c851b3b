// Package day15 implements the Holiday ASCII String Helper algorithm
// and the HASHMAP lens-boxing procedure built on top of it.
package day15

import (
	"fmt"
	"strings"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            15,
		Title:        "Lens Library",
		DefaultInput: "inputs/day15.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

func hash(s string) int {
	h := 0
	for _, c := range s {
		h = (h + int(c)) * 17 % 256
	}
	return h
}

func steps(input string) ([]string, error) {
	var out []string
	for _, step := range strings.Split(strings.TrimSpace(input), ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		out = append(out, step)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no initialization steps in input")
	}
	return out, nil
}

func part1(input string) (any, error) {
	ss, err := steps(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, s := range ss {
		sum += hash(s)
	}
	return sum, nil
}

type lens struct {
	label string
	focal int
}

func part2(input string) (any, error) {
	ss, err := steps(input)
	if err != nil {
		return nil, err
	}
	var boxes [256][]lens
	for _, s := range ss {
		if label, ok := strings.CutSuffix(s, "-"); ok {
			b := hash(label)
			for i, l := range boxes[b] {
				if l.label == label {
					boxes[b] = append(boxes[b][:i], boxes[b][i+1:]...)
					break
				}
			}
			continue
		}
		label, focalStr, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("malformed step %q", s)
		}
		l := lens{label: label, focal: aoc.Int(focalStr)}
		b := hash(label)
		replaced := false
		for i, old := range boxes[b] {
			if old.label == label {
				boxes[b][i] = l
				replaced = true
				break
			}
		}
		if !replaced {
			boxes[b] = append(boxes[b], l)
		}
	}

	power := 0
	for b, box := range boxes {
		for slot, l := range box {
			power += (b + 1) * (slot + 1) * l.focal
		}
	}
	return power, nil
}
