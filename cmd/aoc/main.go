// Package main is the entry point for the aoc CLI.
package main

import (
	"os"

	"github.com/aakee/aoc2023/internal/cli"

	_ "github.com/aakee/aoc2023/days/day01"
	_ "github.com/aakee/aoc2023/days/day02"
	_ "github.com/aakee/aoc2023/days/day04"
	_ "github.com/aakee/aoc2023/days/day06"
	_ "github.com/aakee/aoc2023/days/day07"
	_ "github.com/aakee/aoc2023/days/day13"
	_ "github.com/aakee/aoc2023/days/day14"
	_ "github.com/aakee/aoc2023/days/day15"
	_ "github.com/aakee/aoc2023/days/day16"
	_ "github.com/aakee/aoc2023/days/day22"
	_ "github.com/aakee/aoc2023/days/day23"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
