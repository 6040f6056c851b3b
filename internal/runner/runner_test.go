package runner

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	aocerrors "github.com/aakee/aoc2023/internal/errors"
	"github.com/aakee/aoc2023/internal/puzzle"
)

func identityDay() puzzle.Day {
	return puzzle.Day{
		N:     25,
		Title: "identity",
		Parts: []puzzle.Part{
			{Name: "1", Solve: func(input string) (any, error) {
				return strings.TrimSpace(input), nil
			}},
		},
	}
}

func writeInput(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPrintsAnswer(t *testing.T) {
	t.Parallel()
	path := writeInput(t, []byte("42\n"))
	var out bytes.Buffer
	if err := New(identityDay(), path, &out, nil).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "42\n" {
		t.Errorf("output = %q, want %q", got, "42\n")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()
	path := writeInput(t, []byte("same input\n"))
	var first, second bytes.Buffer
	if err := New(identityDay(), path, &first, nil).Run(); err != nil {
		t.Fatal(err)
	}
	if err := New(identityDay(), path, &second, nil).Run(); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("repeated runs differ: %q vs %q", first.String(), second.String())
	}
}

func TestRunAnswersInPartOrder(t *testing.T) {
	t.Parallel()
	day := puzzle.Day{
		N: 25,
		Parts: []puzzle.Part{
			{Name: "1", Solve: func(string) (any, error) { return "first", nil }},
			{Name: "2", Solve: func(string) (any, error) { return 2, nil }},
		},
	}
	path := writeInput(t, []byte("x"))
	var out bytes.Buffer
	if err := New(day, path, &out, nil).Run(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "first\n2\n" {
		t.Errorf("output = %q, want %q", got, "first\n2\n")
	}
}

func TestRunInputNotFound(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := New(identityDay(), filepath.Join(t.TempDir(), "missing.txt"), &out, nil).Run()
	if err == nil {
		t.Fatal("Run() with missing input succeeded")
	}
	if got := aocerrors.GetExitCode(err); got != aocerrors.ExitInputError {
		t.Errorf("exit code = %v, want %v", got, aocerrors.ExitInputError)
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q does not mention a missing input", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want none", out.String())
	}
}

func TestRunInputNotText(t *testing.T) {
	t.Parallel()
	path := writeInput(t, []byte{0xff, 0xfe, 0x00, 0xff})
	err := New(identityDay(), path, &bytes.Buffer{}, nil).Run()
	if err == nil {
		t.Fatal("Run() with binary input succeeded")
	}
	if got := aocerrors.GetExitCode(err); got != aocerrors.ExitInputError {
		t.Errorf("exit code = %v, want %v", got, aocerrors.ExitInputError)
	}
}

func TestRunPartError(t *testing.T) {
	t.Parallel()
	day := puzzle.Day{
		N: 25,
		Parts: []puzzle.Part{
			{Name: "2", Solve: func(string) (any, error) {
				return nil, fmt.Errorf("malformed input")
			}},
		},
	}
	path := writeInput(t, []byte("x"))
	var out bytes.Buffer
	err := New(day, path, &out, nil).Run()
	if err == nil {
		t.Fatal("Run() with failing part succeeded")
	}
	if got := aocerrors.GetExitCode(err); got != aocerrors.ExitComputationError {
		t.Errorf("exit code = %v, want %v", got, aocerrors.ExitComputationError)
	}
	for _, want := range []string{"day 25", "part 2", "malformed input"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err, want)
		}
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want none", out.String())
	}
}

func TestRunPartPanic(t *testing.T) {
	t.Parallel()
	day := puzzle.Day{
		N: 25,
		Parts: []puzzle.Part{
			{Name: "1", Solve: func(string) (any, error) {
				panic("not a digit: 'x'")
			}},
		},
	}
	path := writeInput(t, []byte("x"))
	err := New(day, path, &bytes.Buffer{}, nil).Run()
	if err == nil {
		t.Fatal("Run() with panicking part succeeded")
	}
	if !strings.Contains(err.Error(), "not a digit") {
		t.Errorf("error %q does not carry the panic message", err)
	}
	if got := aocerrors.GetExitCode(err); got != aocerrors.ExitComputationError {
		t.Errorf("exit code = %v, want %v", got, aocerrors.ExitComputationError)
	}
}
