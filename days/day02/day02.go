// Package day02 checks which cube games are possible with a fixed bag
// of red, green and blue cubes, and the minimum bag each game needs.
package day02

import (
	"fmt"
	"strings"

	"github.com/aakee/aoc2023/aoc"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:            2,
		Title:        "Cube Conundrum",
		DefaultInput: "inputs/day02.txt",
		Parts: []puzzle.Part{
			{Name: "1", Solve: part1},
			{Name: "2", Solve: part2},
		},
	})
}

// The bag contents fixed by the assignment.
const (
	maxRed   = 12
	maxGreen = 13
	maxBlue  = 14
)

type game struct {
	id    int
	draws []draw
}

type draw struct {
	red, green, blue int
}

// parseGame reads one line of the form
// "Game 3: 1 red, 3 green; 2 blue, 8 green".
func parseGame(line string) (game, error) {
	header, rest, ok := strings.Cut(line, ":")
	if !ok {
		return game{}, fmt.Errorf("missing game header in %q", line)
	}
	idStr, ok := strings.CutPrefix(strings.TrimSpace(header), "Game ")
	if !ok {
		return game{}, fmt.Errorf("malformed game header %q", header)
	}
	g := game{id: aoc.Int(idStr)}
	for _, run := range strings.Split(rest, ";") {
		var d draw
		for _, cube := range strings.Split(run, ",") {
			numStr, color, ok := strings.Cut(strings.TrimSpace(cube), " ")
			if !ok {
				return game{}, fmt.Errorf("malformed cube count %q", cube)
			}
			n := aoc.Int(numStr)
			switch color {
			case "red":
				d.red += n
			case "green":
				d.green += n
			case "blue":
				d.blue += n
			default:
				return game{}, fmt.Errorf("unknown color %q", color)
			}
		}
		g.draws = append(g.draws, d)
	}
	return g, nil
}

func parseGames(input string) ([]game, error) {
	var games []game
	for _, line := range aoc.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("no games in input")
	}
	return games, nil
}

func part1(input string) (any, error) {
	games, err := parseGames(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, g := range games {
		legal := true
		for _, d := range g.draws {
			if d.red > maxRed || d.green > maxGreen || d.blue > maxBlue {
				legal = false
				break
			}
		}
		if legal {
			sum += g.id
		}
	}
	return sum, nil
}

func part2(input string) (any, error) {
	games, err := parseGames(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, g := range games {
		var need draw
		for _, d := range g.draws {
			need.red = max(need.red, d.red)
			need.green = max(need.green, d.green)
			need.blue = max(need.blue, d.blue)
		}
		sum += need.red * need.green * need.blue
	}
	return sum, nil
}
