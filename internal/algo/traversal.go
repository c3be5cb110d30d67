package algo

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/dataset"
)

// Variant is a depth-first visiting order.
type Variant uint8

const (
	InOrder Variant = iota
	PreOrder
	PostOrder
)

func (v Variant) String() string {
	switch v {
	case InOrder:
		return "In-Order"
	case PreOrder:
		return "Pre-Order"
	case PostOrder:
		return "Post-Order"
	}
	return "Unknown"
}

// Variants lists the orders in selector order.
func Variants() []Variant { return []Variant{InOrder, PreOrder, PostOrder} }

// ParseVariant accepts "In-Order", "in-order", "inorder" and "in" style names.
func ParseVariant(s string) (Variant, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	switch norm {
	case "in", "inorder":
		return InOrder, nil
	case "pre", "preorder":
		return PreOrder, nil
	case "post", "postorder":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

type walkAction uint8

const (
	visitSelf walkAction = iota
	descendLeft
	descendRight
)

var walkOrders = map[Variant][3]walkAction{
	InOrder:   {descendLeft, visitSelf, descendRight},
	PreOrder:  {visitSelf, descendLeft, descendRight},
	PostOrder: {descendLeft, descendRight, visitSelf},
}

type walkFrame struct {
	key  int
	slot int
}

// Traversal walks a fixed tree depth-first with an explicit frame stack.
// The stack mirrors the current path: a frame is pushed on descent and
// popped once its three action slots are used up.
type Traversal struct {
	tree    *dataset.Tree
	variant Variant
	order   [3]walkAction

	overlay *dataset.TreeOverlay
	stack   []walkFrame
	path    []int
	visited map[int]bool
	printed []int
	pending []string
	current int
	started bool
	done    bool
	index   int
	last    Step
}

func NewTraversal(tree *dataset.Tree, v Variant) *Traversal {
	order, ok := walkOrders[v]
	if !ok {
		panic(fmt.Sprintf("algo: no walk order for variant %d", v))
	}
	t := &Traversal{tree: tree, variant: v, order: order}
	t.Reset()
	return t
}

func (t *Traversal) Name() string     { return t.variant.String() + " Traversal" }
func (t *Traversal) Variant() Variant { return t.variant }

func (t *Traversal) Reset() {
	t.overlay = dataset.NewTreeOverlay(t.tree)
	t.stack = t.stack[:0]
	t.path = t.path[:0]
	t.visited = make(map[int]bool, t.tree.Len())
	t.printed = t.printed[:0]
	t.pending = nil
	t.current = dataset.None
	t.started, t.done = false, false
	t.index = 0
	t.last = Step{}
}

func (t *Traversal) Done() bool   { return t.done }
func (t *Traversal) Frame() Frame { return t.snapshot() }

func (t *Traversal) Next() Step {
	if t.done {
		return t.last
	}
	if !t.started {
		t.started = true
		t.push(t.tree.Root())
		t.pending = append(t.pending, fmt.Sprintf("Starting %s traversal", t.variant))
	}
	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		if top.slot == len(t.order) {
			t.pop()
			continue
		}
		act := t.order[top.slot]
		top.slot++
		key := top.key

		switch act {
		case visitSelf:
			if t.visited[key] {
				continue
			}
			t.visited[key] = true
			t.printed = append(t.printed, key)
			return t.visit(key, ActionVisit, fmt.Sprintf("Printing %d", key))

		case descendLeft, descendRight:
			ch, _ := t.tree.Children(key)
			child, side := ch.Left, "left"
			if act == descendRight {
				child, side = ch.Right, "right"
			}
			if child == dataset.None {
				t.pending = append(t.pending, fmt.Sprintf("No %s child for %d", side, key))
				continue
			}
			step := t.visit(key, ActionDescend, fmt.Sprintf("Going %s from %d", side, key))
			t.push(child)
			return step
		}
	}

	t.done = true
	t.last = t.emit(ActionFinish, DelayNone, fmt.Sprintf("%s order = %s", t.variant, dataset.FormatInts(t.printed)))
	t.last.Done = true
	return t.last
}

func (t *Traversal) push(key int) {
	t.stack = append(t.stack, walkFrame{key: key})
	t.path = append(t.path, key)
}

func (t *Traversal) pop() {
	t.stack = t.stack[:len(t.stack)-1]
	t.path = t.path[:len(t.path)-1]
}

// visit highlights key and the edges along the current path.
func (t *Traversal) visit(key int, a Action, msg string) Step {
	if len(t.path) == 0 || t.path[len(t.path)-1] != key {
		panic(fmt.Sprintf("algo: path %v does not end at visited node %d", t.path, key))
	}
	t.current = key
	t.overlay.Nodes[key] = dataset.Active
	t.overlay.PaintPath(t.path, dataset.Active)
	return t.emit(a, DelayVisit, msg)
}

func (t *Traversal) emit(a Action, delay float64, msg string) Step {
	lines := append(t.pending, msg)
	t.pending = nil
	s := Step{Index: t.index, Action: a, Frame: t.snapshot(), Log: lines, Delay: delay}
	t.index++
	return s
}

func (t *Traversal) snapshot() TreeFrame {
	o := t.overlay.Clone()
	return TreeFrame{
		Nodes:   o.Nodes,
		Edges:   o.Edges,
		Path:    append([]int(nil), t.path...),
		Visited: append([]int(nil), t.printed...),
		Current: t.current,
	}
}
