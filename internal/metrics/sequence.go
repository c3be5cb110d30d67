package metrics

import "github.com/san-kum/algoviz/internal/algo"

// Inversions counts the pairs still out of order in the latest frame. It
// reaches zero exactly when the data is sorted.
type Inversions struct {
	name  string
	count int
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions"}
}

func (m *Inversions) Name() string { return m.name }

func (m *Inversions) Observe(s algo.Step) {
	f, ok := s.Frame.(algo.SequenceFrame)
	if !ok {
		return
	}
	m.count = CountInversions(f.Values)
}

func (m *Inversions) Value() float64 { return float64(m.count) }
func (m *Inversions) Reset()         { m.count = 0 }

// CountInversions is quadratic, which is fine at visualizer sizes.
func CountInversions(values []int) int {
	n := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}

type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (m *Comparisons) Name() string { return m.name }

func (m *Comparisons) Observe(s algo.Step) {
	if s.Action == algo.ActionCompare {
		m.count++
	}
}

func (m *Comparisons) Value() float64 { return float64(m.count) }
func (m *Comparisons) Reset()         { m.count = 0 }

// Swaps counts data moves: bubble exchanges and insertion shifts.
type Swaps struct {
	name  string
	count int
}

func NewSwaps() *Swaps {
	return &Swaps{name: "swaps"}
}

func (m *Swaps) Name() string { return m.name }

func (m *Swaps) Observe(s algo.Step) {
	if s.Action == algo.ActionSwap || s.Action == algo.ActionShift {
		m.count++
	}
}

func (m *Swaps) Value() float64 { return float64(m.count) }
func (m *Swaps) Reset()         { m.count = 0 }
