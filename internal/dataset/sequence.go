package dataset

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Sequence is the subject of the sorting views: the values and a parallel
// color overlay of the same length.
type Sequence struct {
	Values []int
	Colors []Color
}

// NewSequence copies values into a sequence with a default overlay.
func NewSequence(values []int) (*Sequence, error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}
	s := &Sequence{
		Values: make([]int, len(values)),
		Colors: make([]Color, len(values)),
	}
	copy(s.Values, values)
	return s, nil
}

func (s *Sequence) Len() int { return len(s.Values) }

// ResetColors sets every position back to Default, keeping the values.
func (s *Sequence) ResetColors() { s.Fill(Default) }

// Fill paints every position with c.
func (s *Sequence) Fill(c Color) {
	for i := range s.Colors {
		s.Colors[i] = c
	}
}

// Paint sets positions [from, to) to c.
func (s *Sequence) Paint(from, to int, c Color) {
	for i := from; i < to; i++ {
		s.Colors[i] = c
	}
}

// Swap exchanges the values at i and j.
func (s *Sequence) Swap(i, j int) {
	s.Values[i], s.Values[j] = s.Values[j], s.Values[i]
}

// Max returns the largest value, or 0 for an empty sequence.
func (s *Sequence) Max() int {
	if len(s.Values) == 0 {
		return 0
	}
	return lo.Max(s.Values)
}

func (s *Sequence) Clone() *Sequence {
	c := &Sequence{
		Values: make([]int, len(s.Values)),
		Colors: make([]Color, len(s.Colors)),
	}
	copy(c.Values, s.Values)
	copy(c.Colors, s.Colors)
	return c
}

func (s *Sequence) String() string { return FormatInts(s.Values) }

// FormatInts renders values as "[1, 2, 3]".
func FormatInts(values []int) string {
	parts := lo.Map(values, func(v int, _ int) string { return strconv.Itoa(v) })
	return "[" + strings.Join(parts, ", ") + "]"
}
