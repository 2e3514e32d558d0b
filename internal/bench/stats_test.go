package bench_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/bogorace/internal/bench"
)

var _ = Describe("ComputeStats", func() {
	It("should report nothing for an empty input", func() {
		_, ok := bench.ComputeStats(3, nil)
		Expect(ok).To(BeFalse())
	})

	// Given more than three timings
	// When stats are computed
	// Then the fastest and the slowest are dropped
	It("should trim the extremes", func() {
		stats, ok := bench.ComputeStats(5, []float64{100, 1, 4, 2, 3})

		Expect(ok).To(BeTrue())
		Expect(stats.Length).To(Equal(5))
		Expect(stats.Count).To(Equal(5))
		Expect(stats.Min).To(Equal(2.0))
		Expect(stats.Max).To(Equal(4.0))
		Expect(stats.Average).To(Equal(3.0))
		Expect(stats.Median).To(Equal(3.0))
		Expect(stats.StdDev).To(BeNumerically("~", 0.8165, 1e-4))
	})

	It("should keep every value up to three samples", func() {
		stats, ok := bench.ComputeStats(2, []float64{6, 2, 4})

		Expect(ok).To(BeTrue())
		Expect(stats.Min).To(Equal(2.0))
		Expect(stats.Max).To(Equal(6.0))
		Expect(stats.Average).To(Equal(4.0))
	})

	It("should take the upper middle value as median", func() {
		stats, ok := bench.ComputeStats(1, []float64{1, 2, 3, 4, 5, 6})

		Expect(ok).To(BeTrue())
		// trimmed to [2 3 4 5]
		Expect(stats.Median).To(Equal(4.0))
		Expect(stats.Average).To(Equal(3.5))
	})

	It("should have no deviation for a single value", func() {
		stats, ok := bench.ComputeStats(1, []float64{42})

		Expect(ok).To(BeTrue())
		Expect(stats.StdDev).To(BeZero())
		Expect(stats.Median).To(Equal(42.0))
	})
})
