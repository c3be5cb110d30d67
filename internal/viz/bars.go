package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/san-kum/algoviz/internal/algo"
)

const barGlyph = "█"

// Bars draws a sorting frame as vertical bars, height rows tall, with the
// values and indexes underneath. Bars are scaled to the largest value.
func Bars(f algo.SequenceFrame, t Theme, height int) string {
	if len(f.Values) == 0 {
		return ""
	}
	if height < 1 {
		height = 1
	}

	peak := lo.Max(f.Values)
	cellW := max(2, len(strconv.Itoa(peak)), len(strconv.Itoa(len(f.Values)-1)))
	heights := lo.Map(f.Values, func(v int, _ int) int { return barHeight(v, peak, height) })

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i, h := range heights {
			if i > 0 {
				b.WriteByte(' ')
			}
			if h >= row {
				b.WriteString(t.Style(f.Colors[i]).Render(strings.Repeat(barGlyph, cellW)))
			} else {
				b.WriteString(strings.Repeat(" ", cellW))
			}
		}
		b.WriteByte('\n')
	}

	for i, v := range f.Values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Style(f.Colors[i]).Render(fmt.Sprintf("%*d", cellW, v)))
	}
	b.WriteByte('\n')

	muted := Subtle.Foreground(t.Muted)
	for i := range f.Values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(muted.Render(fmt.Sprintf("%*d", cellW, i)))
	}
	b.WriteByte('\n')
	return b.String()
}

// barHeight scales v into [0, rows]; any positive value gets at least one
// row so small values stay visible.
func barHeight(v, peak, rows int) int {
	if v <= 0 || peak <= 0 {
		return 0
	}
	h := int(math.Ceil(float64(v) * float64(rows) / float64(peak)))
	return min(max(h, 1), rows)
}
