package util_test

import (
	"math"
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/bogorace/internal/util"
)

var _ = Describe("Util", func() {
	Context("GenerateSequence", func() {
		It("should generate n values inside [min, max)", func() {
			rng := rand.New(rand.NewPCG(1, 2))

			seq := util.GenerateSequence(rng, 50, -5, 5)

			Expect(seq).To(HaveLen(50))
			for _, v := range seq {
				Expect(v).To(BeNumerically(">=", -5))
				Expect(v).To(BeNumerically("<", 5))
			}
		})

		It("should be deterministic for a given seed", func() {
			a := util.GenerateSequence(rand.New(rand.NewPCG(7, 7)), 10, 0, 100)
			b := util.GenerateSequence(rand.New(rand.NewPCG(7, 7)), 10, 0, 100)
			Expect(a).To(Equal(b))
		})

		It("should accept the full int range", func() {
			rng := rand.New(rand.NewPCG(3, 4))

			seq := util.GenerateSequence(rng, 100, math.MinInt, math.MaxInt)

			Expect(seq).To(HaveLen(100))
			for _, v := range seq {
				Expect(v).To(BeNumerically("<", math.MaxInt))
			}
		})

		It("should return an empty sequence for n = 0", func() {
			Expect(util.GenerateSequence(rand.New(rand.NewPCG(1, 1)), 0, 0, 100)).To(BeEmpty())
		})
	})

	Context("FormatSequence", func() {
		It("should render comma separated values", func() {
			Expect(util.FormatSequence([]int{1, 3, 3, 5})).To(Equal("[1, 3, 3, 5]"))
			Expect(util.FormatSequence([]int{})).To(Equal("[]"))
		})
	})

	DescribeTable("FormatMicros",
		func(us float64, expected string) {
			Expect(util.FormatMicros(us)).To(Equal(expected))
		},
		Entry("microseconds", 12.0, "12 µs"),
		Entry("fractional microseconds", 12.346, "12.35 µs"),
		Entry("zero", 0.0, "0 µs"),
		Entry("milliseconds", 1500.0, "1.5 ms"),
		Entry("seconds", 2_500_000.0, "2.5 s"),
		Entry("large seconds stay in seconds", 5_000_000_000.0, "5000 s"),
	)

	It("should scale the standard deviation with the value", func() {
		Expect(util.FormatMicrosWithStdDev(2000, 500)).To(Equal("2 ms ± 0.5"))
		Expect(util.FormatMicrosWithStdDev(10, 1.25)).To(Equal("10 µs ± 1.25"))
	})

	It("should round to two decimals", func() {
		Expect(util.Round(1.23456)).To(Equal(1.23))
	})
})
