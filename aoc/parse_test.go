package aoc

import (
	"reflect"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{" 42\n", 42},
		{"-7", -7},
	}
	for _, tt := range tests {
		if got := Int(tt.in); got != tt.want {
			t.Errorf("Int(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIntPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Int(\"x\") did not panic")
		}
	}()
	Int("x")
}

func TestInts(t *testing.T) {
	got := Ints("1", "2", "3")
	if want := []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Ints = %v, want %v", got, want)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a\nb\n", []string{"a", "b"}},
		{"a\nb", []string{"a", "b"}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		if got := Lines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBlocks(t *testing.T) {
	got := Blocks("a\nb\n\nc\nd\n")
	if want := []string{"a\nb", "c\nd"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Blocks = %q, want %q", got, want)
	}
}

func TestDigit(t *testing.T) {
	if got := Digit('7'); got != 7 {
		t.Errorf("Digit('7') = %v, want 7", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Digit('x') did not panic")
		}
	}()
	Digit('x')
}
