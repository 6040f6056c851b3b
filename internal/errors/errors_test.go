package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{InputNotFound("inputs/day01.txt", nil), `input file not found: inputs/day01.txt`},
		{InputDecode("x.bin"), `input file is not valid UTF-8 text: x.bin`},
		{Computationf(4, "2", "bad card %q", "x"), `[day 4 part 2] bad card "x"`},
		{Config("bad config"), `bad config`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{InputNotFound("x", nil), ExitInputError},
		{InputDecode("x"), ExitInputError},
		{Computationf(1, "1", "boom"), ExitComputationError},
		{Config("bad"), ExitConfigError},
		{fmt.Errorf("plain error"), ExitComputationError},
	}
	for _, tt := range tests {
		if got := GetExitCode(tt.err); got != tt.want {
			t.Errorf("GetExitCode(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := InputNotFound("x.txt", cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap did not return the cause")
	}
	wrapped := Computation(4, "1", cause)
	if !strings.Contains(wrapped.Error(), "no such file") {
		t.Errorf("Computation message %q does not carry the cause", wrapped.Error())
	}
}
