package viz

import (
	"github.com/guptarohit/asciigraph"
)

// Chart plots a metric history. It returns an empty string when there is
// nothing to plot.
func Chart(history []float64, caption string, width, height int) string {
	if len(history) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.Precision(0),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(history, opts...)
}
