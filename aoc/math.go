package aoc

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0,
// smaller root first. It panics when there are no real roots.
func SolveQuad[T Number](a, b, c T) (float64, float64) {
	d := float64(b*b - 4*a*c)
	if d < 0 {
		panic(fmt.Sprintf("no real roots for a=%v b=%v c=%v", a, b, c))
	}
	d = math.Sqrt(d)
	a2 := float64(2 * a)
	r1 := (-float64(b) + d) / a2
	r2 := (-float64(b) - d) / a2
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return r1, r2
}
