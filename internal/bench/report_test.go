package bench_test

import (
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/tupyy/bogorace/internal/bench"
	"github.com/tupyy/bogorace/internal/models"
)

var _ = Describe("Report", func() {
	var report *bench.Report

	BeforeEach(func() {
		report = &bench.Report{
			Stats: []models.Stats{
				{Length: 1, Count: 30, Average: 12.5, StdDev: 0.5, Min: 12, Max: 13, Median: 12.5},
				{Length: 7, Count: 30, Average: 1500, StdDev: 250, Min: 900, Max: 2500000, Median: 1400},
			},
		}
	})

	Context("Markdown", func() {
		It("should render one row per length", func() {
			lines := strings.Split(strings.TrimSpace(report.Markdown()), "\n")

			Expect(lines).To(HaveLen(4))
			Expect(lines[0]).To(Equal("| n | average | min | max |"))
			Expect(lines[2]).To(Equal("| 1 | 12.5 µs ± 0.5 | 12 µs | 13 µs |"))
			Expect(lines[3]).To(Equal("| 7 | 1.5 ms ± 0.25 | 900 µs | 2.5 s |"))
		})

		It("should render only the header without stats", func() {
			empty := &bench.Report{}
			Expect(strings.Count(empty.Markdown(), "\n")).To(Equal(2))
		})
	})

	Context("WriteXLSX", func() {
		// Given a report
		// When it is written to a workbook
		// Then the workbook holds a header row and one row per length
		It("should write the statistics", func() {
			path := filepath.Join(GinkgoT().TempDir(), "report.xlsx")

			Expect(report.WriteXLSX(path)).To(Succeed())

			f, err := excelize.OpenFile(path)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			rows, err := f.GetRows("Sheet1", excelize.Options{RawCellValue: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
			Expect(rows[0]).To(Equal([]string{"n", "samples", "average_us", "std_dev_us", "min_us", "max_us", "median_us"}))
			Expect(rows[1]).To(Equal([]string{"1", "30", "12.5", "0.5", "12", "13", "12.5"}))
			Expect(rows[2][0]).To(Equal("7"))
			Expect(rows[2][5]).To(Equal("2500000"))
		})

		It("should fail on an unwritable path", func() {
			path := filepath.Join(GinkgoT().TempDir(), "missing", "report.xlsx")
			Expect(report.WriteXLSX(path)).NotTo(Succeed())
		})
	})
})
