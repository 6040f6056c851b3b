// Package puzzle defines the day/part model and the registry of solved days.
package puzzle

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// Part is one half of a day's puzzle: a pure function from the raw input
// text to a printable answer. Solve must not have side effects beyond the
// returned value; panics inside Solve are converted to computation errors
// by the runner.
type Part struct {
	Name  string
	Solve func(input string) (any, error)
}

// Day describes one solved puzzle day.
type Day struct {
	N            int
	Title        string
	DefaultInput string // embedded fallback path, overridden by CLI argument or config
	Parts        []Part
}

var (
	mu   sync.Mutex
	days = make(map[int]Day)
)

// Register adds a day to the registry. It panics on a duplicate or
// malformed day: registration happens in package init functions, where
// a bad entry is a build bug rather than a runtime condition.
func Register(d Day) {
	mu.Lock()
	defer mu.Unlock()
	if d.N < 1 || d.N > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range", d.N))
	}
	if len(d.Parts) == 0 {
		panic(fmt.Sprintf("puzzle: day %d has no parts", d.N))
	}
	if _, ok := days[d.N]; ok {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.N))
	}
	days[d.N] = d
}

// Get returns the registered day n.
func Get(n int) (Day, bool) {
	mu.Lock()
	defer mu.Unlock()
	d, ok := days[n]
	return d, ok
}

// Days returns all registered days in ascending order.
func Days() []Day {
	mu.Lock()
	defer mu.Unlock()
	nums := maps.Keys(days)
	slices.Sort(nums)
	out := make([]Day, 0, len(nums))
	for _, n := range nums {
		out = append(out, days[n])
	}
	return out
}
