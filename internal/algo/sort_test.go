package algo_test

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/dataset"
)

func mustSequence(values ...int) *dataset.Sequence {
	s, err := dataset.NewSequence(values)
	Expect(err).NotTo(HaveOccurred())
	return s
}

func finalValues(steps []algo.Step) []int {
	return steps[len(steps)-1].Frame.(algo.SequenceFrame).Values
}

var sorters = []struct {
	name string
	make func(*dataset.Sequence) algo.Engine
}{
	{"bubble", func(s *dataset.Sequence) algo.Engine { return algo.NewBubble(s) }},
	{"insertion", func(s *dataset.Sequence) algo.Engine { return algo.NewInsertion(s) }},
}

var _ = Describe("sorting engines", func() {
	for _, sorter := range sorters {
		newEngine := sorter.make

		Context(sorter.name, func() {
			It("sorts random inputs with duplicates ascending", func() {
				rng := rand.New(rand.NewSource(11))
				for trial := 0; trial < 60; trial++ {
					size := dataset.MinSize + rng.Intn(dataset.MaxSize-dataset.MinSize+1)
					seq, err := dataset.Generate(rng, size, 1, 4)
					Expect(err).NotTo(HaveOccurred())

					want := append([]int(nil), seq.Values...)
					sort.Ints(want)

					Expect(finalValues(drain(newEngine(seq)))).To(Equal(want))
				}
			})

			It("ends with every position sorted and a summary line", func() {
				steps := drain(newEngine(mustSequence(4, 2, 3, 1, 5)))
				last := steps[len(steps)-1]

				Expect(last.Done).To(BeTrue())
				Expect(last.Action).To(Equal(algo.ActionFinish))
				Expect(last.Log).To(Equal([]string{"sorted array = [1, 2, 3, 4, 5]"}))
				for _, c := range last.Frame.(algo.SequenceFrame).Colors {
					Expect(c).To(Equal(dataset.Sorted))
				}
			})

			It("keeps returning the final step once done", func() {
				e := newEngine(mustSequence(2, 1, 3, 5, 4))
				steps := drain(e)
				Expect(e.Done()).To(BeTrue())
				again := e.Next()
				Expect(again.Done).To(BeTrue())
				Expect(again.Index).To(Equal(steps[len(steps)-1].Index))
			})

			It("replays identically after Reset", func() {
				e := newEngine(mustSequence(9, 3, 7, 3, 1, 8, 2))
				first := drain(e)
				e.Reset()
				Expect(e.Done()).To(BeFalse())
				Expect(e.Frame().(algo.SequenceFrame).Values).To(Equal([]int{9, 3, 7, 3, 1, 8, 2}))
				second := drain(e)
				Expect(second).To(Equal(first))
			})

			It("does not mutate the caller's sequence", func() {
				seq := mustSequence(5, 4, 3, 2, 1)
				drain(newEngine(seq))
				Expect(seq.Values).To(Equal([]int{5, 4, 3, 2, 1}))
			})

			It("numbers steps consecutively", func() {
				steps := drain(newEngine(mustSequence(3, 1, 2, 5, 4)))
				for i, s := range steps {
					Expect(s.Index).To(Equal(i))
				}
			})
		})
	}
})

var _ = Describe("Bubble", func() {
	It("logs each swap by index", func() {
		steps := drain(algo.NewBubble(mustSequence(3, 1, 2)))
		Expect(logOf(steps)).To(Equal([]string{
			"Starting Bubble Sort",
			"swap 0 and 1",
			"swap 1 and 2",
			"sorted array = [1, 2, 3]",
		}))
	})

	It("highlights the compared pair before deciding", func() {
		e := algo.NewBubble(mustSequence(2, 1, 3, 4, 5))
		start := e.Next()
		Expect(start.Action).To(Equal(algo.ActionStart))
		Expect(start.Delay).To(Equal(algo.DelayNone))

		cmp := e.Next()
		Expect(cmp.Action).To(Equal(algo.ActionCompare))
		Expect(cmp.Delay).To(Equal(algo.DelayDefault))
		frame := cmp.Frame.(algo.SequenceFrame)
		Expect(frame.Colors[:3]).To(Equal([]dataset.Color{dataset.CompareLeft, dataset.CompareRight, dataset.Default}))

		swap := e.Next()
		Expect(swap.Action).To(Equal(algo.ActionSwap))
		frame = swap.Frame.(algo.SequenceFrame)
		Expect(frame.Values[:2]).To(Equal([]int{1, 2}))
		Expect(frame.Colors[:2]).To(Equal([]dataset.Color{dataset.Swapped, dataset.Swapped}))
	})

	It("stops after one clean pass on sorted input", func() {
		const n = 8
		sorted := make([]int, n)
		reversed := make([]int, n)
		for i := range sorted {
			sorted[i] = i + 1
			reversed[i] = n - i
		}

		clean := drain(algo.NewBubble(mustSequence(sorted...)))
		Expect(linesWithPrefix(logOf(clean), "swap")).To(BeEmpty())
		// start + n-1 comparisons + finish
		Expect(clean).To(HaveLen(1 + (n - 1) + 1))

		dirty := drain(algo.NewBubble(mustSequence(reversed...)))
		Expect(len(dirty)).To(BeNumerically(">", len(clean)))
	})

	It("handles a single element", func() {
		steps := drain(algo.NewBubble(mustSequence(7)))
		Expect(logOf(steps)).To(Equal([]string{"Starting Bubble Sort", "sorted array = [7]"}))
	})
})

var _ = Describe("Insertion", func() {
	It("moves elements exactly as the textbook trace of [5,2,4,6,1,3]", func() {
		steps := drain(algo.NewInsertion(mustSequence(5, 2, 4, 6, 1, 3)))
		lines := logOf(steps)

		Expect(linesWithPrefix(lines, "Moving")).To(Equal([]string{
			"Moving 5 from position 0 to 1",
			"Moving 5 from position 1 to 2",
			"Moving 6 from position 3 to 4",
			"Moving 5 from position 2 to 3",
			"Moving 4 from position 1 to 2",
			"Moving 2 from position 0 to 1",
			"Moving 6 from position 4 to 5",
			"Moving 5 from position 3 to 4",
			"Moving 4 from position 2 to 3",
		}))
		Expect(linesWithPrefix(lines, "Inserting")).To(Equal([]string{
			"Inserting element 2 at position 1",
			"Inserting element 4 at position 2",
			"Inserting element 6 at position 3",
			"Inserting element 1 at position 4",
			"Inserting element 3 at position 5",
		}))
		Expect(lines[len(lines)-1]).To(Equal("sorted array = [1, 2, 3, 4, 5, 6]"))
	})

	It("uses the short delay for comparisons and shifts only", func() {
		for _, s := range drain(algo.NewInsertion(mustSequence(4, 3, 2, 1, 5))) {
			switch s.Action {
			case algo.ActionCompare, algo.ActionShift:
				Expect(s.Delay).To(Equal(algo.DelayShort))
			case algo.ActionStart, algo.ActionBegin, algo.ActionPlace:
				Expect(s.Delay).To(Equal(algo.DelayDefault))
			}
		}
	})

	It("marks the growing sorted prefix and the key being inserted", func() {
		e := algo.NewInsertion(mustSequence(1, 3, 2, 4, 5))
		start := e.Next()
		Expect(start.Frame.(algo.SequenceFrame).Colors[0]).To(Equal(dataset.Sorted))

		e.Next() // begin i=1
		e.Next() // place i=1
		begin := e.Next()
		Expect(begin.Action).To(Equal(algo.ActionBegin))
		Expect(begin.Frame.(algo.SequenceFrame).Colors).To(Equal([]dataset.Color{
			dataset.Sorted, dataset.Sorted, dataset.Current, dataset.Default, dataset.Default,
		}))

		cmp := e.Next()
		Expect(cmp.Action).To(Equal(algo.ActionCompare))
		Expect(cmp.Frame.(algo.SequenceFrame).Colors).To(Equal([]dataset.Color{
			dataset.Sorted, dataset.Compared, dataset.Current, dataset.Default, dataset.Default,
		}))

		shift := e.Next()
		Expect(shift.Action).To(Equal(algo.ActionShift))
		Expect(shift.Frame.(algo.SequenceFrame).Values).To(Equal([]int{1, 3, 3, 4, 5}))
		Expect(shift.Frame.(algo.SequenceFrame).Colors).To(Equal([]dataset.Color{
			dataset.Sorted, dataset.Sorted, dataset.Swapped, dataset.Default, dataset.Default,
		}))
	})
})
