package dataset

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSequence(t *testing.T) {
	src := []int{3, 1, 2}
	s, err := NewSequence(src)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, []int{3, 1, 2}, s.Values, "sequence must own its values")
	assert.Equal(t, []Color{Default, Default, Default}, s.Colors)

	_, err = NewSequence(nil)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestSequenceColors(t *testing.T) {
	s, err := NewSequence([]int{4, 5, 6, 7})
	require.NoError(t, err)

	s.Paint(1, 3, Sorted)
	assert.Equal(t, []Color{Default, Sorted, Sorted, Default}, s.Colors)

	s.ResetColors()
	assert.Equal(t, []Color{Default, Default, Default, Default}, s.Colors)
	assert.Equal(t, []int{4, 5, 6, 7}, s.Values)
}

func TestSequenceCloneIsDeep(t *testing.T) {
	s, err := NewSequence([]int{1, 2})
	require.NoError(t, err)
	c := s.Clone()
	c.Swap(0, 1)
	c.Colors[0] = Swapped

	assert.Equal(t, []int{1, 2}, s.Values)
	assert.Equal(t, Default, s.Colors[0])
	assert.Equal(t, "[2, 1]", c.String())
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MinSize},
		{-3, MinSize},
		{5, 5},
		{15, 15},
		{50, 50},
		{51, MaxSize},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampSize(tt.in), "ClampSize(%d)", tt.in)
	}
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s, err := Generate(rng, 15, DefaultMinValue, DefaultMaxValue)
	require.NoError(t, err)
	require.Equal(t, 15, s.Len())
	for _, v := range s.Values {
		assert.GreaterOrEqual(t, v, DefaultMinValue)
		assert.LessOrEqual(t, v, DefaultMaxValue)
	}

	_, err = Generate(rng, 0, 1, 10)
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = Generate(rng, 5, 10, 1)
	assert.ErrorIs(t, err, ErrValueRange)
}

func TestGenerateSeedIsDeterministic(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(42)), 20, 1, 10)
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(42)), 20, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values)
}

func TestGeneratePatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	rev, err := GeneratePattern(rng, PatternReversed, 6, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, rev.Values)

	nearly, err := GeneratePattern(rng, PatternNearlySorted, 16, 1, 10)
	require.NoError(t, err)
	got := append([]int(nil), nearly.Values...)
	sort.Ints(got)
	for i, v := range got {
		assert.Equal(t, i+1, v, "nearly sorted data must be a permutation of 1..n")
	}

	few, err := GeneratePattern(rng, PatternFewUnique, 30, 1, 10)
	require.NoError(t, err)
	for _, v := range few.Values {
		assert.True(t, v >= 1 && v <= 3, "value %d outside few-unique set", v)
	}

	_, err = GeneratePattern(rng, Pattern("zigzag"), 5, 1, 10)
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "compare-left", CompareLeft.String())
	assert.Equal(t, "unknown", Color(200).String())
}
