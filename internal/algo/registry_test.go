package algo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/dataset"
)

var _ = Describe("Registry", func() {
	var (
		reg     *algo.Registry
		subject algo.Subject
	)

	BeforeEach(func() {
		reg = algo.NewRegistry()
		subject = algo.Subject{
			Sequence: mustSequence(3, 1, 2, 5, 4),
			Tree:     dataset.ReferenceTree(),
		}
	})

	It("lists sorting engines before traversals", func() {
		names := []string{}
		for _, info := range reg.List() {
			names = append(names, info.Name)
		}
		Expect(names).To(Equal([]string{"bubble", "insertion", "inorder", "postorder", "preorder"}))
	})

	It("resolves variant spellings to traversal entries", func() {
		info, err := reg.Lookup("Post-Order")
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Name).To(Equal("postorder"))
		Expect(info.Tree).To(BeTrue())
		Expect(info.Title).To(Equal("Post-Order Traversal"))
	})

	It("builds engines by name", func() {
		e, err := reg.New("insertion", subject)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name()).To(Equal("Insertion Sort"))

		e, err = reg.New("in-order", subject)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name()).To(Equal("In-Order Traversal"))
	})

	It("rejects unknown names", func() {
		_, err := reg.New("quick", subject)
		Expect(err).To(MatchError(algo.ErrUnknownAlgorithm))
	})

	It("rejects engines without their data", func() {
		_, err := reg.New("bubble", algo.Subject{Tree: subject.Tree})
		Expect(err).To(MatchError(algo.ErrMissingSubject))

		_, err = reg.New("preorder", algo.Subject{Sequence: subject.Sequence})
		Expect(err).To(MatchError(algo.ErrMissingSubject))
	})
})
