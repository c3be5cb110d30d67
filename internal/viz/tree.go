package viz

import (
	"strconv"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/dataset"
)

// TreeCanvas draws tree edges as braille lines and node keys as labels on a
// w x h cell canvas, each tagged with its role in f. Node positions are in
// the unit square with the origin bottom-left.
func TreeCanvas(tree *dataset.Tree, f algo.TreeFrame, w, h int) *Canvas {
	c := NewCanvas(w, h)
	px := func(k int) (int, int) {
		p := tree.Position(k)
		return int(p.X * float64(2*w-1)), int((1 - p.Y) * float64(4*h-1))
	}

	// Default edges first so active ones are drawn on top.
	edges := tree.Edges()
	for _, pass := range []bool{false, true} {
		for _, e := range edges {
			tag := f.Edges[e]
			if (tag == dataset.Active) != pass {
				continue
			}
			x0, y0 := px(e.Parent)
			x1, y1 := px(e.Child)
			c.DrawLine(x0, y0, x1, y1, tag)
		}
	}

	for _, k := range tree.Keys() {
		x, y := px(k)
		label := "(" + strconv.Itoa(k) + ")"
		c.Label(x/2-len(label)/2, y/4, label, f.Nodes[k])
	}
	return c
}

// TreeView renders TreeCanvas with theme colors.
func TreeView(tree *dataset.Tree, f algo.TreeFrame, t Theme, w, h int) string {
	return TreeCanvas(tree, f, w, h).Render(t)
}
