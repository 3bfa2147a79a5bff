package indexing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPow2(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want bool
	}{
		{"zero is not a power of two", 0, false},
		{"negative is not a power of two", -8, false},
		{"1 is a power of two", 1, true},
		{"2 is a power of two", 2, true},
		{"16 is a power of two", 16, true},
		{"17 is not a power of two", 17, false},
		{"24 is not a power of two", 24, false},
		{"1<<40 is a power of two", 1 << 40, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPow2(tt.n))
		})
	}
}

func TestBitScan(t *testing.T) {
	tests := []struct {
		x    uint64
		want int
	}{
		{0, -1},
		{1, 0},
		{2, 1},
		{12, 2},
		{1 << 63, 63},
		{^uint64(0), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BitScan(tt.x), "BitScan(%#x)", tt.x)
	}
}

func TestLog2FromPow2(t *testing.T) {
	for i := 0; i < 62; i++ {
		assert.Equal(t, i, Log2FromPow2(1<<i))
	}
}

func TestCeilPow2(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"0 -> 1", 0, 1},
		{"1 -> 1", 1, 1},
		{"2 -> 2", 2, 2},
		{"3 -> 4", 3, 4},
		{"64 -> 64", 64, 64},
		{"65 -> 128", 65, 128},
		{"2000 -> 2048", 2000, 2048},
		{"2048 -> 2048", 2048, 2048},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CeilPow2(tt.n))
		})
	}
}
