package metrics

import (
	"github.com/samber/lo"

	"github.com/san-kum/algoviz/internal/algo"
)

const DefaultCapacity = 600

// Recorder feeds every step to its metrics and samples each value into a
// ring-like history capped at capacity, oldest samples dropped first.
type Recorder struct {
	metrics  []Metric
	history  map[string][]float64
	capacity int
}

func NewRecorder(capacity int, ms ...Metric) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	r := &Recorder{metrics: ms, capacity: capacity}
	r.Reset()
	return r
}

func (r *Recorder) OnStep(s algo.Step) {
	for _, m := range r.metrics {
		m.Observe(s)
		h := append(r.history[m.Name()], m.Value())
		if len(h) > r.capacity {
			h = h[len(h)-r.capacity:]
		}
		r.history[m.Name()] = h
	}
}

func (r *Recorder) Reset() {
	r.history = make(map[string][]float64, len(r.metrics))
	for _, m := range r.metrics {
		m.Reset()
	}
}

// Names lists the metrics in registration order.
func (r *Recorder) Names() []string {
	return lo.Map(r.metrics, func(m Metric, _ int) string { return m.Name() })
}

// Value is the latest value of a metric, false when it is not recorded.
func (r *Recorder) Value(name string) (float64, bool) {
	m, ok := lo.Find(r.metrics, func(m Metric) bool { return m.Name() == name })
	if !ok {
		return 0, false
	}
	return m.Value(), true
}

// Values snapshots every metric.
func (r *Recorder) Values() map[string]float64 {
	return lo.Associate(r.metrics, func(m Metric) (string, float64) { return m.Name(), m.Value() })
}

// History returns a copy of the samples for name.
func (r *Recorder) History(name string) []float64 {
	return append([]float64(nil), r.history[name]...)
}
