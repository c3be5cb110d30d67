package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	MinSize     = 5
	MaxSize     = 50
	DefaultSize = 15

	DefaultMinValue = 1
	DefaultMaxValue = 10

	defaultUniqueValues = 3
)

// Pattern names a data generator.
type Pattern string

const (
	PatternRandom       Pattern = "random"
	PatternNearlySorted Pattern = "nearly_sorted"
	PatternReversed     Pattern = "reversed"
	PatternFewUnique    Pattern = "few_unique"
)

var generators = map[Pattern]func(rng *rand.Rand, size, lo, hi int) []int{
	PatternRandom:       randomValues,
	PatternNearlySorted: nearlySortedValues,
	PatternReversed:     reversedValues,
	PatternFewUnique:    fewUniqueValues,
}

// Patterns lists the registered generator names in a stable order.
func Patterns() []Pattern {
	return []Pattern{PatternRandom, PatternNearlySorted, PatternReversed, PatternFewUnique}
}

// ClampSize bounds a requested sequence length to [MinSize, MaxSize].
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// Generate draws size uniform values from [lo, hi].
func Generate(rng *rand.Rand, size, lo, hi int) (*Sequence, error) {
	return GeneratePattern(rng, PatternRandom, size, lo, hi)
}

// GeneratePattern builds a fresh sequence with the named generator. Only
// PatternRandom uses the [lo, hi] range; the shaped patterns produce 1..size
// permutations or a small set of repeated values.
func GeneratePattern(rng *rand.Rand, p Pattern, size, lo, hi int) (*Sequence, error) {
	if size <= 0 {
		return nil, ErrEmptySequence
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: %d > %d", ErrValueRange, lo, hi)
	}
	if p == "" {
		p = PatternRandom
	}
	gen, ok := generators[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, p)
	}
	return NewSequence(gen(rng, size, lo, hi))
}

func randomValues(rng *rand.Rand, size, lo, hi int) []int {
	values := make([]int, size)
	for i := range values {
		values[i] = lo + rng.Intn(hi-lo+1)
	}
	return values
}

// nearlySortedValues starts from 1..size and applies floor(sqrt(size)) random swaps.
func nearlySortedValues(rng *rand.Rand, size, _, _ int) []int {
	values := make([]int, size)
	for i := range values {
		values[i] = i + 1
	}
	swaps := int(math.Sqrt(float64(size)))
	for k := 0; k < swaps; k++ {
		i, j := rng.Intn(size), rng.Intn(size)
		values[i], values[j] = values[j], values[i]
	}
	return values
}

func reversedValues(_ *rand.Rand, size, _, _ int) []int {
	values := make([]int, size)
	for i := range values {
		values[i] = size - i
	}
	return values
}

func fewUniqueValues(rng *rand.Rand, size, _, _ int) []int {
	values := make([]int, size)
	for i := range values {
		values[i] = 1 + rng.Intn(defaultUniqueValues)
	}
	return values
}
