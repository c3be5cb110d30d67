// Package metrics turns the step stream of a run into numbers: each metric
// observes every step, and a Recorder keeps a bounded history per metric
// for charting.
package metrics

import "github.com/san-kum/algoviz/internal/algo"

type Metric interface {
	Name() string
	Observe(s algo.Step)
	Value() float64
	Reset()
}

// ForSequence returns fresh metrics for a sorting run.
func ForSequence() []Metric {
	return []Metric{NewInversions(), NewComparisons(), NewSwaps()}
}

// ForTree returns fresh metrics for a traversal run.
func ForTree() []Metric {
	return []Metric{NewPathDepth(), NewVisited()}
}
