package dataset

// TreeOverlay is the per-node and per-edge color state of a tree view.
type TreeOverlay struct {
	Nodes map[int]Color
	Edges map[Edge]Color
}

// NewTreeOverlay returns an all-Default overlay covering every node and edge of t.
func NewTreeOverlay(t *Tree) *TreeOverlay {
	o := &TreeOverlay{
		Nodes: make(map[int]Color, t.Len()),
		Edges: make(map[Edge]Color, t.Len()),
	}
	for _, key := range t.Keys() {
		o.Nodes[key] = Default
	}
	for _, e := range t.Edges() {
		o.Edges[e] = Default
	}
	return o
}

func (o *TreeOverlay) Reset() {
	for k := range o.Nodes {
		o.Nodes[k] = Default
	}
	for e := range o.Edges {
		o.Edges[e] = Default
	}
}

// PaintPath colors consecutive links along path; pairs that are not edges are skipped.
func (o *TreeOverlay) PaintPath(path []int, c Color) {
	for i := 0; i+1 < len(path); i++ {
		e := Edge{Parent: path[i], Child: path[i+1]}
		if _, ok := o.Edges[e]; ok {
			o.Edges[e] = c
		}
	}
}

func (o *TreeOverlay) Clone() *TreeOverlay {
	c := &TreeOverlay{
		Nodes: make(map[int]Color, len(o.Nodes)),
		Edges: make(map[Edge]Color, len(o.Edges)),
	}
	for k, v := range o.Nodes {
		c.Nodes[k] = v
	}
	for e, v := range o.Edges {
		c.Edges[e] = v
	}
	return c
}
