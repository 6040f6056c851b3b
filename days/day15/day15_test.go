package day15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n"

func TestHash(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"HASH", 52},
		{"rn=1", 30},
		{"cm-", 253},
		{"rn", 0},
		{"qp", 1},
	}
	for _, tt := range tests {
		if got := hash(tt.in); got != tt.want {
			t.Errorf("hash(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPart1(t *testing.T) {
	got, err := part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 1320, got)
}

func TestPart2(t *testing.T) {
	got, err := part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 145, got)
}

func TestEmptyInput(t *testing.T) {
	_, err := part1("")
	assert.Error(t, err)
}
