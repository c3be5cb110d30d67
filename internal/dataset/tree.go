package dataset

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// None marks an absent child.
const None = -1

// Point is a node position in the unit square, origin bottom-left.
type Point struct {
	X, Y float64
}

// Edge is a directed parent→child link.
type Edge struct {
	Parent, Child int
}

// Children holds the left and right child keys of a node, None when absent.
type Children struct {
	Left, Right int
}

// Node is one entry of a tree definition.
type Node struct {
	Key   int   `yaml:"key"`
	Left  int   `yaml:"left"`
	Right int   `yaml:"right"`
	Pos   Point `yaml:"pos"`
}

// Tree is an immutable binary tree with fixed node positions.
type Tree struct {
	root     int
	children map[int]Children
	pos      map[int]Point
	keys     []int
	depth    int
}

// ReferenceRoot is the root key of ReferenceTree.
const ReferenceRoot = 5

var referenceNodes = []Node{
	{Key: 5, Left: 3, Right: 8, Pos: Point{0.5, 0.9}},
	{Key: 3, Left: 1, Right: 4, Pos: Point{0.3, 0.7}},
	{Key: 8, Left: 6, Right: 10, Pos: Point{0.7, 0.7}},
	{Key: 1, Left: 0, Right: 2, Pos: Point{0.2, 0.5}},
	{Key: 4, Left: None, Right: None, Pos: Point{0.4, 0.5}},
	{Key: 6, Left: None, Right: 7, Pos: Point{0.6, 0.5}},
	{Key: 10, Left: 9, Right: None, Pos: Point{0.8, 0.5}},
	{Key: 0, Left: None, Right: None, Pos: Point{0.1, 0.3}},
	{Key: 2, Left: None, Right: None, Pos: Point{0.3, 0.3}},
	{Key: 7, Left: None, Right: None, Pos: Point{0.7, 0.3}},
	{Key: 9, Left: None, Right: None, Pos: Point{0.9, 0.3}},
}

// ReferenceNodes returns a copy of the built-in 11-node BST definition.
func ReferenceNodes() []Node {
	nodes := make([]Node, len(referenceNodes))
	copy(nodes, referenceNodes)
	return nodes
}

// ReferenceTree returns the built-in BST over 0..10 rooted at 5.
func ReferenceTree() *Tree {
	t, err := NewTree(ReferenceRoot, referenceNodes)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTree validates a definition and builds the tree. Every problem found is
// reported, joined into one error wrapping ErrInvalidTree.
func NewTree(root int, nodes []Node) (*Tree, error) {
	t := &Tree{
		root:     root,
		children: make(map[int]Children, len(nodes)),
		pos:      make(map[int]Point, len(nodes)),
	}

	var errs error
	for _, n := range nodes {
		if _, dup := t.children[n.Key]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate key %d", n.Key))
			continue
		}
		if n.Key == None {
			errs = multierr.Append(errs, fmt.Errorf("key %d is reserved for absent children", None))
			continue
		}
		if n.Pos.X < 0 || n.Pos.X > 1 || n.Pos.Y < 0 || n.Pos.Y > 1 {
			errs = multierr.Append(errs, fmt.Errorf("node %d: position (%.2f, %.2f) outside the unit square", n.Key, n.Pos.X, n.Pos.Y))
		}
		t.children[n.Key] = Children{Left: n.Left, Right: n.Right}
		t.pos[n.Key] = n.Pos
	}
	if _, ok := t.children[root]; !ok {
		errs = multierr.Append(errs, fmt.Errorf("root %d is not defined", root))
		return nil, fmt.Errorf("%w: %w", ErrInvalidTree, errs)
	}

	parent := make(map[int]int, len(t.children))
	for _, key := range sortedKeys(t.children) {
		ch := t.children[key]
		for _, c := range []struct {
			side  string
			child int
		}{{"left", ch.Left}, {"right", ch.Right}} {
			if c.child == None {
				continue
			}
			if _, ok := t.children[c.child]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("node %d: missing %s child %d", key, c.side, c.child))
				continue
			}
			if c.child == root {
				errs = multierr.Append(errs, fmt.Errorf("node %d: cycle back to root %d", key, root))
				continue
			}
			if p, seen := parent[c.child]; seen {
				errs = multierr.Append(errs, fmt.Errorf("node %d has two parents (%d and %d)", c.child, p, key))
				continue
			}
			parent[c.child] = key
		}
	}

	reached := t.reachable()
	for _, key := range sortedKeys(t.children) {
		if reached[key] {
			continue
		}
		if onCycle(key, parent) {
			errs = multierr.Append(errs, fmt.Errorf("node %d: ancestors form a cycle", key))
		} else {
			errs = multierr.Append(errs, fmt.Errorf("node %d: unreachable from root %d", key, root))
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTree, errs)
	}

	t.keys = sortedKeys(t.children)
	t.depth = t.height(root)
	return t, nil
}

// Problems lists the individual violations behind an error from NewTree.
// Any other error comes back as a single problem.
func Problems(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := j.Unwrap(); len(errs) == 2 && errs[0] == ErrInvalidTree {
			return multierr.Errors(errs[1])
		}
	}
	return []error{err}
}

// reachable walks from the root with an explicit stack, skipping links that
// would revisit a node.
func (t *Tree) reachable() map[int]bool {
	seen := map[int]bool{t.root: true}
	stack := []int{t.root}
	for len(stack) > 0 {
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ch := t.children[key]
		for _, c := range []int{ch.Left, ch.Right} {
			if _, ok := t.children[c]; !ok || seen[c] {
				continue
			}
			seen[c] = true
			stack = append(stack, c)
		}
	}
	return seen
}

func onCycle(key int, parent map[int]int) bool {
	seen := map[int]bool{}
	cur := key
	for {
		if seen[cur] {
			return true
		}
		seen[cur] = true
		p, ok := parent[cur]
		if !ok {
			return false
		}
		cur = p
	}
}

func (t *Tree) height(key int) int {
	if key == None {
		return 0
	}
	ch := t.children[key]
	return 1 + max(t.height(ch.Left), t.height(ch.Right))
}

func (t *Tree) Root() int { return t.root }
func (t *Tree) Len() int  { return len(t.keys) }

// Depth is the number of nodes on the longest root-to-leaf path.
func (t *Tree) Depth() int { return t.depth }

// Keys returns the node keys in ascending order.
func (t *Tree) Keys() []int {
	keys := make([]int, len(t.keys))
	copy(keys, t.keys)
	return keys
}

func (t *Tree) Children(key int) (Children, bool) {
	ch, ok := t.children[key]
	return ch, ok
}

func (t *Tree) Position(key int) Point { return t.pos[key] }

// Edges returns every parent→child link ordered by parent then child key.
func (t *Tree) Edges() []Edge {
	edges := make([]Edge, 0, len(t.keys))
	for _, key := range t.keys {
		ch := t.children[key]
		for _, c := range []int{ch.Left, ch.Right} {
			if c != None {
				edges = append(edges, Edge{Parent: key, Child: c})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Parent != edges[j].Parent {
			return edges[i].Parent < edges[j].Parent
		}
		return edges[i].Child < edges[j].Child
	})
	return edges
}

// Nodes returns the definition the tree was built from, in key order.
func (t *Tree) Nodes() []Node {
	return lo.Map(t.keys, func(key int, _ int) Node {
		ch := t.children[key]
		return Node{Key: key, Left: ch.Left, Right: ch.Right, Pos: t.pos[key]}
	})
}

func sortedKeys(m map[int]Children) []int {
	keys := lo.Keys(m)
	sort.Ints(keys)
	return keys
}
