package recorder_test

import (
	"math"
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/recorder"
)

const (
	minHeight = 5
	maxHeight = 500
)

func randomValues(rng *rand.Rand, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = minHeight + rng.Intn(maxHeight-minHeight+1)
	}
	return values
}

// record runs name over a scratch copy so the original stays available for replay.
func record(name string, values []int) anim.Log {
	return recorder.Record(name, slices.Clone(values))
}

func nlogn(n int) int {
	if n < 2 {
		return n
	}
	return int(float64(n) * math.Log2(float64(n)))
}

var _ = Describe("Recorded event logs", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	for _, name := range recorder.Default().Names() {
		name := name

		Context("for "+name, func() {
			It("replays into a non-decreasing array", func() {
				for _, n := range []int{0, 1, 2, 3, 10, 57, 128, 300} {
					values := randomValues(rng, n)
					log := record(name, values)

					out, err := anim.Replay(values, log)
					Expect(err).NotTo(HaveOccurred())
					Expect(anim.IsSorted(out)).To(BeTrue(), "n=%d", n)
					Expect(out).To(ConsistOf(values))
				}
			})

			It("only references indices inside the array", func() {
				values := randomValues(rng, 120)
				Expect(anim.Validate(record(name, values), len(values))).To(Succeed())
			})

			It("pairs every swap with a preceding selected highlight", func() {
				log := record(name, randomValues(rng, 80))
				Expect(len(log) % 2).To(BeZero())
				for i := 0; i < len(log); i += 2 {
					Expect(log[i].Kind).To(Equal(anim.Highlight))
					Expect(log[i].Color).To(Equal(anim.Selected))
					Expect(log[i+1].Kind).To(Equal(anim.Swap))
					Expect(log[i+1].Color).To(Equal(anim.Unsorted))
					Expect(log[i+1].Bars).To(Equal(log[i].Bars))
				}
			})

			It("carries pre-swap values in swapped order", func() {
				values := randomValues(rng, 64)
				current := slices.Clone(values)
				for _, e := range record(name, values) {
					if e.Kind != anim.Swap {
						continue
					}
					if len(e.Indices) == 2 {
						a, b := e.Indices[0], e.Indices[1]
						Expect(e.Values).To(Equal([]int{current[b], current[a]}))
					}
					e.Apply(current)
				}
			})

			It("is deterministic", func() {
				values := randomValues(rng, 90)
				Expect(record(name, values)).To(Equal(record(name, values)))
			})

			It("emits nothing for empty and single-element input", func() {
				Expect(record(name, nil)).To(BeEmpty())
				Expect(record(name, []int{77})).To(BeEmpty())
			})

			It("stays within a quadratic number of swaps", func() {
				for _, n := range []int{10, 100, 300} {
					log := record(name, randomValues(rng, n))
					Expect(log.Swaps()).To(BeNumerically("<=", n*n), "n=%d", n)
				}
			})
		})
	}

	DescribeTable("n log n algorithms stay within n log n swaps",
		func(name string) {
			for _, n := range []int{16, 100, 300} {
				log := record(name, randomValues(rng, n))
				Expect(log.Swaps()).To(BeNumerically("<=", 3*nlogn(n)+n), "n=%d", n)
			}
		},
		Entry("merge", "merge"),
		Entry("heap", "heap"),
		Entry("quick", "quick"),
	)

	DescribeTable("already sorted input produces no swaps",
		func(name string) {
			values := randomValues(rng, 150)
			slices.Sort(values)
			Expect(record(name, values).Swaps()).To(BeZero())
		},
		Entry("merge", "merge"),
		Entry("bubble", "bubble"),
		Entry("quick", "quick"),
		Entry("selection", "selection"),
		Entry("comb", "comb"),
		Entry("gnome", "gnome"),
		Entry("oddeven", "oddeven"),
	)

	It("heap sort still replays sorted input back to itself", func() {
		values := randomValues(rng, 150)
		slices.Sort(values)
		out, err := anim.Replay(values, record("heap", values))
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(values))
	})

	It("terminates comb sort on reversed input", func() {
		values := make([]int, 250)
		for i := range values {
			values[i] = maxHeight - i
		}
		out, err := anim.Replay(values, record("comb", values))
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.IsSorted(out)).To(BeTrue())
	})

	It("returns an empty log for unknown algorithms", func() {
		values := randomValues(rng, 20)
		before := slices.Clone(values)
		Expect(recorder.Record("bogo", values)).To(BeEmpty())
		Expect(values).To(Equal(before))
	})
})
