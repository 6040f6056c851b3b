// Package runner resolves a day's input file, feeds it to the day's
// parts, and prints the answers.
package runner

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/aakee/aoc2023/internal/errors"
	"github.com/aakee/aoc2023/internal/puzzle"
)

// Runner executes one day's puzzle parts against a single input file.
// The input is read once before any part runs and held immutable for
// the rest of the run.
type Runner struct {
	day  puzzle.Day
	path string
	out  io.Writer
	log  *zap.Logger
}

// New constructs a Runner for day with the already-resolved input path.
// A nil out defaults to stdout, a nil log discards diagnostics.
func New(day puzzle.Day, inputPath string, out io.Writer, log *zap.Logger) *Runner {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{day: day, path: inputPath, out: out, log: log}
}

// Run reads the input and solves every part in order, printing one
// answer per line. The first failure aborts the run; nothing is printed
// for a part that failed.
func (r *Runner) Run() error {
	input, err := r.readInput()
	if err != nil {
		return err
	}
	for _, p := range r.day.Parts {
		ans, err := r.solve(p, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, ans)
	}
	return nil
}

func (r *Runner) readInput() (string, error) {
	r.log.Debug("reading input",
		zap.Int("day", r.day.N),
		zap.String("path", r.path))
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", errors.InputNotFound(r.path, err)
	}
	if !utf8.Valid(data) {
		return "", errors.InputDecode(r.path)
	}
	return string(data), nil
}

// solve runs a single part, converting solver errors and panics into
// computation errors that name the failing day and part.
func (r *Runner) solve(p puzzle.Part, input string) (ans any, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = errors.Computationf(r.day.N, p.Name, "%v", v)
		}
	}()
	t0 := time.Now()
	ans, err = p.Solve(input)
	if err != nil {
		return nil, errors.Computation(r.day.N, p.Name, err)
	}
	r.log.Debug("part solved",
		zap.String("part", p.Name),
		zap.Duration("took", time.Since(t0).Round(time.Microsecond)))
	return ans, nil
}
