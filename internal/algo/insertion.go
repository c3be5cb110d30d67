package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/dataset"
)

type insertionPhase uint8

const (
	insertionStart insertionPhase = iota
	insertionBegin
	insertionCompare
	insertionShift
	insertionPlace
	insertionFinish
	insertionDone
)

// Insertion grows a sorted prefix, shifting larger elements right to open
// a hole for each key.
type Insertion struct {
	initial *dataset.Sequence
	seq     *dataset.Sequence
	phase   insertionPhase
	i, j    int
	key     int
	index   int
	last    Step
}

func NewInsertion(seq *dataset.Sequence) *Insertion {
	e := &Insertion{initial: seq.Clone()}
	e.Reset()
	return e
}

func (e *Insertion) Name() string { return "Insertion Sort" }

func (e *Insertion) Reset() {
	e.seq = e.initial.Clone()
	e.seq.ResetColors()
	e.phase = insertionStart
	e.i, e.j, e.key, e.index = 1, 0, 0, 0
	e.last = Step{}
}

func (e *Insertion) Done() bool   { return e.phase == insertionDone }
func (e *Insertion) Frame() Frame { return snapshotSequence(e.seq) }

func (e *Insertion) Next() Step {
	n := e.seq.Len()
	switch e.phase {
	case insertionStart:
		e.seq.ResetColors()
		e.seq.Colors[0] = dataset.Sorted
		e.phase = insertionBegin
		return e.emit(ActionStart, DelayDefault, "Starting Insertion Sort")

	case insertionBegin:
		if e.i >= n {
			e.phase = insertionFinish
			return e.Next()
		}
		e.key = e.seq.Values[e.i]
		e.j = e.i - 1
		e.paintPrefix(e.i)
		e.seq.Colors[e.i] = dataset.Current
		e.phase = insertionCompare
		return e.emit(ActionBegin, DelayDefault, fmt.Sprintf("Inserting element %d at position %d", e.key, e.i))

	case insertionCompare:
		if e.j < 0 || e.seq.Values[e.j] <= e.key {
			e.phase = insertionPlace
			return e.Next()
		}
		e.paintPrefix(e.i)
		if hole := e.j + 1; hole == e.i {
			e.seq.Colors[hole] = dataset.Current
		} else {
			e.seq.Colors[hole] = dataset.Swapped
		}
		e.seq.Colors[e.j] = dataset.Compared
		e.phase = insertionShift
		return e.emit(ActionCompare, DelayShort)

	case insertionShift:
		j := e.j
		e.seq.Values[j+1] = e.seq.Values[j]
		e.paintPrefix(e.i)
		e.seq.Colors[j+1] = dataset.Swapped
		e.j--
		e.phase = insertionCompare
		return e.emit(ActionShift, DelayShort, fmt.Sprintf("Moving %d from position %d to %d", e.seq.Values[j], j, j+1))

	case insertionPlace:
		e.seq.Values[e.j+1] = e.key
		e.paintPrefix(e.i + 1)
		e.i++
		e.phase = insertionBegin
		return e.emit(ActionPlace, DelayDefault)

	case insertionFinish:
		e.seq.Fill(dataset.Sorted)
		e.phase = insertionDone
		e.last = e.emit(ActionFinish, DelayNone, "sorted array = "+e.seq.String())
		e.last.Done = true
		return e.last
	}
	return e.last
}

// paintPrefix re-derives the overlay: [0, k) sorted, the rest default.
func (e *Insertion) paintPrefix(k int) {
	e.seq.ResetColors()
	e.seq.Paint(0, k, dataset.Sorted)
}

func (e *Insertion) emit(a Action, delay float64, lines ...string) Step {
	s := Step{Index: e.index, Action: a, Frame: snapshotSequence(e.seq), Log: lines, Delay: delay}
	e.index++
	return s
}
