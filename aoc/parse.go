// Package aoc holds the small toolkit shared by the day solutions:
// text parsing helpers, a generic grid with direction-aware movement,
// and a weighted graph for maze reduction.
package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Lines splits the input into lines, dropping the trailing newline.
func Lines(input string) []string {
	return strings.Split(strings.TrimRight(input, "\n"), "\n")
}

// Blocks splits the input into its blank-line separated blocks.
func Blocks(input string) []string {
	return strings.Split(strings.TrimRight(input, "\n"), "\n\n")
}

// Int returns the int value of the string. It panics on anything that
// is not an integer; parse panics are reported as computation failures
// by the runner.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}
