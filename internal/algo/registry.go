package algo

import (
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/dataset"
)

// Subject carries the data an engine walks. Sorting engines read Sequence,
// traversal engines read Tree.
type Subject struct {
	Sequence *dataset.Sequence
	Tree     *dataset.Tree
}

// Info describes one registered algorithm.
type Info struct {
	Name  string
	Title string
	Tree  bool
}

var variantNames = map[Variant]string{InOrder: "inorder", PreOrder: "preorder", PostOrder: "postorder"}

type entry struct {
	info Info
	new  func(Subject) Engine
}

type Registry struct {
	entries map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}

	r.add(Info{Name: "bubble", Title: "Bubble Sort"}, func(s Subject) Engine { return NewBubble(s.Sequence) })
	r.add(Info{Name: "insertion", Title: "Insertion Sort"}, func(s Subject) Engine { return NewInsertion(s.Sequence) })
	for _, v := range Variants() {
		v := v
		r.add(Info{Name: variantNames[v], Title: v.String() + " Traversal", Tree: true}, func(s Subject) Engine { return NewTraversal(s.Tree, v) })
	}
	return r
}

func (r *Registry) add(info Info, fn func(Subject) Engine) {
	r.entries[info.Name] = entry{info: info, new: fn}
}

// Lookup resolves a name; traversal variants are also accepted in any form
// ParseVariant understands ("in-order", "Post-Order", ...).
func (r *Registry) Lookup(name string) (Info, error) {
	if e, ok := r.entries[name]; ok {
		return e.info, nil
	}
	if v, err := ParseVariant(name); err == nil {
		return r.entries[variantNames[v]].info, nil
	}
	return Info{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

// New builds the named engine over s.
func (r *Registry) New(name string, s Subject) (Engine, error) {
	info, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if info.Tree && s.Tree == nil {
		return nil, fmt.Errorf("%w: %s needs a tree", ErrMissingSubject, info.Name)
	}
	if !info.Tree && (s.Sequence == nil || s.Sequence.Len() == 0) {
		return nil, fmt.Errorf("%w: %s needs a sequence", ErrMissingSubject, info.Name)
	}
	return r.entries[info.Name].new(s), nil
}

// List returns every registered algorithm, sorting engines first.
func (r *Registry) List() []Info {
	infos := make([]Info, 0, len(r.entries))
	for _, e := range r.entries {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Tree != infos[j].Tree {
			return !infos[i].Tree
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}
