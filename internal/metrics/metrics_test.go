package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/dataset"
)

func drain(e algo.Engine, obs func(algo.Step)) {
	for {
		s := e.Next()
		obs(s)
		if s.Done {
			return
		}
	}
}

func TestCountInversions(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{1, 2, 3}, 0},
		{[]int{3, 2, 1}, 3},
		{[]int{2, 2, 1}, 2},
		{nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountInversions(tt.in), "%v", tt.in)
	}
}

func TestSequenceMetricsOverBubbleRun(t *testing.T) {
	seq, err := dataset.NewSequence([]int{3, 1, 2})
	require.NoError(t, err)

	r := NewRecorder(0, ForSequence()...)
	drain(algo.NewBubble(seq), r.OnStep)

	v := r.Values()
	assert.Equal(t, 0.0, v["inversions"])
	assert.Equal(t, 2.0, v["swaps"])
	// pass one compares twice, the clean pass once
	assert.Equal(t, 3.0, v["comparisons"])

	inv := r.History("inversions")
	require.NotEmpty(t, inv)
	assert.Equal(t, 2.0, inv[0])
	for i := 1; i < len(inv); i++ {
		assert.LessOrEqual(t, inv[i], inv[i-1], "bubble swaps never add inversions")
	}
}

func TestSwapsCountInsertionShifts(t *testing.T) {
	seq, err := dataset.NewSequence([]int{5, 2, 4, 6, 1, 3})
	require.NoError(t, err)

	swaps := NewSwaps()
	drain(algo.NewInsertion(seq), swaps.Observe)
	// one shift per inversion
	assert.Equal(t, float64(CountInversions([]int{5, 2, 4, 6, 1, 3})), swaps.Value())
}

func TestTreeMetrics(t *testing.T) {
	tree := dataset.ReferenceTree()
	depth, visited := NewPathDepth(), NewVisited()
	r := NewRecorder(0, depth, visited)

	drain(algo.NewTraversal(tree, algo.PreOrder), r.OnStep)

	assert.Equal(t, tree.Depth(), depth.Max())
	got, ok := r.Value("visited")
	require.True(t, ok)
	assert.Equal(t, float64(tree.Len()), got)

	_, ok = r.Value("inversions")
	assert.False(t, ok)
}

func TestRecorderCapacityAndReset(t *testing.T) {
	swaps := NewSwaps()
	r := NewRecorder(3, swaps)
	for i := 0; i < 5; i++ {
		r.OnStep(algo.Step{Action: algo.ActionSwap})
	}
	assert.Equal(t, []float64{3, 4, 5}, r.History("swaps"))
	assert.Equal(t, []string{"swaps"}, r.Names())

	r.Reset()
	assert.Empty(t, r.History("swaps"))
	assert.Zero(t, swaps.Value())
}

func TestMetricsIgnoreForeignFrames(t *testing.T) {
	inv, depth := NewInversions(), NewPathDepth()
	inv.Observe(algo.Step{Frame: algo.TreeFrame{Path: []int{5, 3}}})
	depth.Observe(algo.Step{Frame: algo.SequenceFrame{Values: []int{2, 1}}})
	assert.Zero(t, inv.Value())
	assert.Zero(t, depth.Value())
}
