package shuffle

import (
	"math/rand"
	"time"
)

// Source yields uniformly distributed floats in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Default returns a source seeded from the wall clock.
func Default() Source {
	return NewSource(time.Now().UnixNano())
}

// Shuffle returns a uniformly permuted copy of items using Fisher–Yates.
// The input slice is left untouched.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := pick(src, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// pick maps a float in [0, 1) onto an index in [0, n).
func pick(src Source, n int) int {
	j := int(src.Float64() * float64(n))
	if j >= n {
		j = n - 1
	}
	if j < 0 {
		j = 0
	}
	return j
}

// Randomizer binds a Source for shuffling answer options.
type Randomizer struct {
	src Source
}

// New constructs a Randomizer. A nil source falls back to Default.
func New(src Source) *Randomizer {
	if src == nil {
		src = Default()
	}
	return &Randomizer{src: src}
}

// FromSeed builds a Randomizer from a seed; zero means time-seeded.
func FromSeed(seed int64) *Randomizer {
	if seed == 0 {
		return New(nil)
	}
	return New(NewSource(seed))
}

// Strings returns a shuffled copy of values.
func (r *Randomizer) Strings(values []string) []string {
	return Shuffle(r.src, values)
}
