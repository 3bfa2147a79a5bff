// Package sample builds the search spaces and lookup samples used by the
// verifier and the benchmark runner.
package sample

import (
	"math/rand/v2"
)

// Item is the element type of the benchmark spaces.
type Item = float32

// Number is any type a small integer converts to exactly.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sorted returns the ascending space 0, 1, ..., n-1.
func Sorted[T Number](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}
	return out
}

// Keys returns count pseudo-random keys drawn uniformly from [0, spaceSize).
// The sequence depends only on seed.
func Keys[T Number](count, spaceSize int, seed uint64) []T {
	out := make([]T, count)
	FillKeys(out, spaceSize, seed)
	return out
}

// FillKeys is Keys writing into a caller-provided slice, for example one
// from an aligned allocator.
func FillKeys[T Number](dst []T, spaceSize int, seed uint64) {
	if spaceSize <= 0 {
		clear(dst)
		return
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range dst {
		dst[i] = T(rng.IntN(spaceSize))
	}
}
