package metrics

import "github.com/san-kum/algoviz/internal/algo"

// PathDepth is the length of the root-to-current path.
type PathDepth struct {
	name  string
	depth int
	max   int
}

func NewPathDepth() *PathDepth {
	return &PathDepth{name: "path_depth"}
}

func (m *PathDepth) Name() string { return m.name }

func (m *PathDepth) Observe(s algo.Step) {
	f, ok := s.Frame.(algo.TreeFrame)
	if !ok {
		return
	}
	m.depth = len(f.Path)
	m.max = max(m.max, m.depth)
}

func (m *PathDepth) Value() float64 { return float64(m.depth) }

// Max is the deepest path seen since the last reset.
func (m *PathDepth) Max() int { return m.max }

func (m *PathDepth) Reset() {
	m.depth = 0
	m.max = 0
}

// Visited is the number of keys printed so far.
type Visited struct {
	name  string
	count int
}

func NewVisited() *Visited {
	return &Visited{name: "visited"}
}

func (m *Visited) Name() string { return m.name }

func (m *Visited) Observe(s algo.Step) {
	if f, ok := s.Frame.(algo.TreeFrame); ok {
		m.count = len(f.Visited)
	}
}

func (m *Visited) Value() float64 { return float64(m.count) }
func (m *Visited) Reset()         { m.count = 0 }
