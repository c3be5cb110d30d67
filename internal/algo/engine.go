// Package algo holds the step engines: each algorithm is a small state
// machine that advances one visible step per call and reports the frame,
// log lines and pacing of that step. Engines never sleep or draw.
package algo

import "github.com/san-kum/algoviz/internal/dataset"

// Base delays in seconds, before speed scaling.
const (
	DelayNone    = 0.0
	DelayShort   = 0.3
	DelayDefault = 0.5
	DelayVisit   = 1.0
)

// Action classifies what a step did.
type Action uint8

const (
	ActionStart Action = iota
	ActionCompare
	ActionSwap
	ActionBegin
	ActionShift
	ActionPlace
	ActionDescend
	ActionVisit
	ActionFinish
)

var actionNames = [...]string{
	ActionStart:   "start",
	ActionCompare: "compare",
	ActionSwap:    "swap",
	ActionBegin:   "begin",
	ActionShift:   "shift",
	ActionPlace:   "place",
	ActionDescend: "descend",
	ActionVisit:   "visit",
	ActionFinish:  "finish",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Frame is an immutable snapshot handed to a renderer.
type Frame interface {
	isFrame()
}

// SequenceFrame is a snapshot of a sorting subject and its overlay.
type SequenceFrame struct {
	Values []int
	Colors []dataset.Color
}

func (SequenceFrame) isFrame() {}

func snapshotSequence(s *dataset.Sequence) SequenceFrame {
	c := s.Clone()
	return SequenceFrame{Values: c.Values, Colors: c.Colors}
}

// TreeFrame is a snapshot of a traversal: overlays, the root-to-current
// path and the keys printed so far in order.
type TreeFrame struct {
	Nodes   map[int]dataset.Color
	Edges   map[dataset.Edge]dataset.Color
	Path    []int
	Visited []int
	Current int
}

func (TreeFrame) isFrame() {}

// Step is the outcome of one Next call: one redraw followed by one pause.
type Step struct {
	Index  int
	Action Action
	Frame  Frame
	// Log holds the lines emitted since the previous redraw.
	Log []string
	// Delay is the base pause in seconds after this redraw.
	Delay float64
	Done  bool
}

// Engine is a step-by-step algorithm walk over a data subject.
type Engine interface {
	// Name is the human readable algorithm title.
	Name() string
	// Reset restores the subject the engine was built with and rewinds the walk.
	Reset()
	// Next advances one visible step. Once Done, it keeps returning the final step.
	Next() Step
	Done() bool
	// Frame is the current snapshot, valid before the first step too.
	Frame() Frame
}
