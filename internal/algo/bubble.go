package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/dataset"
)

type bubblePhase uint8

const (
	bubbleStart bubblePhase = iota
	bubbleCompare
	bubbleExchange
	bubbleFinish
	bubbleDone
)

// Bubble is adjacent-exchange sort with the early exit on a pass that
// makes no swap.
type Bubble struct {
	initial *dataset.Sequence
	seq     *dataset.Sequence
	phase   bubblePhase
	i, j    int
	swapped bool
	index   int
	last    Step
}

func NewBubble(seq *dataset.Sequence) *Bubble {
	b := &Bubble{initial: seq.Clone()}
	b.Reset()
	return b
}

func (b *Bubble) Name() string { return "Bubble Sort" }

func (b *Bubble) Reset() {
	b.seq = b.initial.Clone()
	b.seq.ResetColors()
	b.phase = bubbleStart
	b.i, b.j, b.swapped, b.index = 0, 0, false, 0
	b.last = Step{}
}

func (b *Bubble) Done() bool   { return b.phase == bubbleDone }
func (b *Bubble) Frame() Frame { return snapshotSequence(b.seq) }

func (b *Bubble) Next() Step {
	switch b.phase {
	case bubbleStart:
		b.seq.ResetColors()
		b.phase = bubbleCompare
		return b.emit(ActionStart, DelayNone, "Starting Bubble Sort")

	case bubbleCompare:
		if !b.seek() {
			b.phase = bubbleFinish
			return b.Next()
		}
		b.seq.ResetColors()
		b.seq.Colors[b.j] = dataset.CompareLeft
		b.seq.Colors[b.j+1] = dataset.CompareRight
		b.phase = bubbleExchange
		return b.emit(ActionCompare, DelayDefault)

	case bubbleExchange:
		j := b.j
		b.j++
		b.phase = bubbleCompare
		if b.seq.Values[j] <= b.seq.Values[j+1] {
			return b.Next()
		}
		b.seq.Swap(j, j+1)
		b.swapped = true
		b.seq.Colors[j] = dataset.Swapped
		b.seq.Colors[j+1] = dataset.Swapped
		return b.emit(ActionSwap, DelayDefault, fmt.Sprintf("swap %d and %d", j, j+1))

	case bubbleFinish:
		b.seq.Fill(dataset.Sorted)
		b.phase = bubbleDone
		b.last = b.emit(ActionFinish, DelayNone, "sorted array = "+b.seq.String())
		b.last.Done = true
		return b.last
	}
	return b.last
}

// seek positions (i, j) on the next comparison. It reports false once a
// pass ends without a swap or every pass has run.
func (b *Bubble) seek() bool {
	n := b.seq.Len()
	for {
		if b.j < n-b.i-1 {
			return true
		}
		if !b.swapped {
			return false
		}
		b.i++
		b.j, b.swapped = 0, false
		if b.i >= n {
			return false
		}
	}
}

func (b *Bubble) emit(a Action, delay float64, lines ...string) Step {
	s := Step{Index: b.index, Action: a, Frame: snapshotSequence(b.seq), Log: lines, Delay: delay}
	b.index++
	return s
}
