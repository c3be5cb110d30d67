package algo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/dataset"
)

func treeFrame(s algo.Step) algo.TreeFrame {
	return s.Frame.(algo.TreeFrame)
}

var _ = Describe("Traversal", func() {
	var tree *dataset.Tree

	BeforeEach(func() {
		tree = dataset.ReferenceTree()
	})

	DescribeTable("prints every key once in variant order",
		func(v algo.Variant, want []int, trailing []string) {
			steps := drain(algo.NewTraversal(tree, v))
			last := steps[len(steps)-1]

			Expect(last.Done).To(BeTrue())
			Expect(treeFrame(last).Visited).To(Equal(want))
			// empty child slots met after the last redraw ride on the final step
			Expect(last.Log).To(Equal(append(trailing, v.String()+" order = "+dataset.FormatInts(want))))

			printed := linesWithPrefix(logOf(steps), "Printing")
			Expect(printed).To(HaveLen(tree.Len()))
		},
		Entry("in-order", algo.InOrder, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			[]string{"No right child for 10"}),
		Entry("pre-order", algo.PreOrder, []int{5, 3, 1, 0, 2, 4, 8, 6, 7, 10, 9},
			[]string{"No left child for 9", "No right child for 9", "No right child for 10"}),
		Entry("post-order", algo.PostOrder, []int{0, 2, 1, 4, 3, 7, 6, 9, 10, 8, 5},
			[]string(nil)),
	)

	It("takes one step per edge, one per key and a final step", func() {
		for _, v := range algo.Variants() {
			steps := drain(algo.NewTraversal(tree, v))
			Expect(steps).To(HaveLen(len(tree.Edges()) + tree.Len() + 1))
		}
	})

	It("keeps the path rooted, connected and duplicate free", func() {
		for _, v := range algo.Variants() {
			for _, s := range drain(algo.NewTraversal(tree, v)) {
				if s.Done {
					continue
				}
				f := treeFrame(s)
				Expect(f.Path).NotTo(BeEmpty())
				Expect(f.Path[0]).To(Equal(tree.Root()))
				Expect(f.Path[len(f.Path)-1]).To(Equal(f.Current))
				Expect(len(f.Path)).To(BeNumerically("<=", tree.Depth()))

				seen := map[int]bool{}
				for i, k := range f.Path {
					Expect(seen[k]).To(BeFalse(), "key %d repeated in %v", k, f.Path)
					seen[k] = true
					if i == 0 {
						continue
					}
					ch, ok := tree.Children(f.Path[i-1])
					Expect(ok).To(BeTrue())
					Expect(k == ch.Left || k == ch.Right).To(BeTrue(), "%d is not a child of %d", k, f.Path[i-1])
				}

				Expect(f.Nodes[f.Current]).To(Equal(dataset.Active))
				for i := 1; i < len(f.Path); i++ {
					Expect(f.Edges[dataset.Edge{Parent: f.Path[i-1], Child: f.Path[i]}]).To(Equal(dataset.Active))
				}
			}
		}
	})

	It("opens with the start line and the first descent", func() {
		first := algo.NewTraversal(tree, algo.InOrder).Next()
		Expect(first.Action).To(Equal(algo.ActionDescend))
		Expect(first.Delay).To(Equal(algo.DelayVisit))
		Expect(first.Log).To(Equal([]string{"Starting In-Order traversal", "Going left from 5"}))
		Expect(treeFrame(first).Path).To(Equal([]int{5}))
	})

	It("reports missing children once, attached to the next redraw", func() {
		lines := logOf(drain(algo.NewTraversal(tree, algo.InOrder)))
		Expect(lines).To(ContainElement("No left child for 4"))
		Expect(lines).To(ContainElement("No right child for 10"))
		Expect(lines).NotTo(ContainElement(ContainSubstring("Backtracking")))

		count := 0
		for _, l := range lines {
			if l == "Going left from 5" {
				count++
			}
		}
		Expect(count).To(Equal(1))
	})

	It("replays identically after Reset", func() {
		e := algo.NewTraversal(tree, algo.PostOrder)
		first := logOf(drain(e))
		e.Reset()
		Expect(e.Done()).To(BeFalse())
		Expect(e.Frame().(algo.TreeFrame).Visited).To(BeEmpty())
		Expect(logOf(drain(e))).To(Equal(first))
	})

	It("hands out snapshots the engine no longer touches", func() {
		e := algo.NewTraversal(tree, algo.PreOrder)
		first := treeFrame(e.Next())
		path := append([]int(nil), first.Path...)
		drain(e)
		Expect(first.Path).To(Equal(path))
		Expect(first.Visited).To(Equal([]int{5}))
	})
})

var _ = Describe("ParseVariant", func() {
	DescribeTable("accepts common spellings",
		func(in string, want algo.Variant) {
			v, err := algo.ParseVariant(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(want))
		},
		Entry("In-Order", "In-Order", algo.InOrder),
		Entry("inorder", "inorder", algo.InOrder),
		Entry("PRE_ORDER", "PRE_ORDER", algo.PreOrder),
		Entry("post order", "post order", algo.PostOrder),
		Entry("post", "post", algo.PostOrder),
	)

	It("rejects anything else", func() {
		_, err := algo.ParseVariant("level-order")
		Expect(err).To(MatchError(algo.ErrUnknownVariant))
	})
})
