package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/tupyy/bogorace/pkg/errors"
)

func execute(args ...string) (string, error) {
	logs := newLogFlags()
	root := NewRootCommand(logs)
	root.AddCommand(NewBenchCommand(logs))

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func parseSequence(line, prefix string) []int {
	Expect(line).To(HavePrefix(prefix))
	body := strings.TrimSuffix(strings.TrimPrefix(line, prefix+"["), "]")
	if body == "" {
		return []int{}
	}
	var seq []int
	for _, part := range strings.Split(body, ", ") {
		v, err := strconv.Atoi(part)
		Expect(err).NotTo(HaveOccurred())
		seq = append(seq, v)
	}
	return seq
}

var _ = Describe("bogosort", func() {
	BeforeEach(func() {
		color.NoColor = true
	})

	// Given a length and the time flag
	// When the command runs
	// Then it prints the input, its sorted permutation and the elapsed microseconds
	It("should print the unsorted and sorted sequences", func() {
		out, err := execute("6", "--seed", "7", "--time")

		Expect(err).NotTo(HaveOccurred())
		lines := strings.Split(strings.TrimSpace(out), "\n")
		Expect(lines).To(HaveLen(3))

		unsorted := parseSequence(lines[0], "Unsorted: ")
		sorted := parseSequence(lines[1], "Sorted: ")
		Expect(unsorted).To(HaveLen(6))
		expected := slices.Clone(unsorted)
		slices.Sort(expected)
		Expect(sorted).To(Equal(expected))

		micros, err := strconv.ParseInt(lines[2], 10, 64)
		Expect(err).NotTo(HaveOccurred())
		Expect(micros).To(BeNumerically(">=", 0))
	})

	It("should not print the time by default", func() {
		out, err := execute("4", "--workers", "2")

		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Split(strings.TrimSpace(out), "\n")).To(HaveLen(2))
	})

	It("should sort with a single searcher", func() {
		out, err := execute("5", "--single", "--seed", "3")

		Expect(err).NotTo(HaveOccurred())
		lines := strings.Split(strings.TrimSpace(out), "\n")
		Expect(slices.IsSorted(parseSequence(lines[1], "Sorted: "))).To(BeTrue())
	})

	It("should sort with the poll strategy", func() {
		out, err := execute("5", "--strategy", "poll", "--poll-interval", "100us")

		Expect(err).NotTo(HaveOccurred())
		lines := strings.Split(strings.TrimSpace(out), "\n")
		Expect(slices.IsSorted(parseSequence(lines[1], "Sorted: "))).To(BeTrue())
	})

	It("should print empty sequences for a zero length", func() {
		out, err := execute("0", "--time")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Unsorted: []\nSorted: []\n0\n"))
	})

	DescribeTable("should reject invalid input",
		func(args ...string) {
			_, err := execute(args...)
			Expect(srvErrors.IsInvalidConfigurationError(err)).To(BeTrue())
		},
		Entry("non numeric length", "abc"),
		Entry("unknown strategy", "3", "--strategy", "spin"),
		Entry("empty value range", "3", "--min", "10", "--max", "10"),
		Entry("overflowing value range", "3", "--min", "-9223372036854775808", "--max", "9223372036854775807"),
		Entry("negative workers", "3", "--workers", "-2"),
		Entry("unknown log format", "3", "--log-format", "xml"),
	)

	It("should read flags from the environment", func() {
		GinkgoT().Setenv("BOGOSORT_STRATEGY", "spin")

		_, err := execute("3")

		Expect(srvErrors.IsInvalidConfigurationError(err)).To(BeTrue())
	})

	Context("bench", func() {
		// Given a small sweep persisted in a data folder
		// When the bench command runs
		// Then it prints the progress, a markdown row per length and writes the workbook
		It("should report every length", func() {
			dir := GinkgoT().TempDir()
			xlsx := filepath.Join(dir, "report.xlsx")

			out, err := execute("bench", "--from", "1", "--to", "3", "--warmups", "1", "--samples", "2",
				"--workers", "2", "--data-folder", dir, "--xlsx", xlsx)

			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("Warmup: n=1 "))
			Expect(out).To(ContainSubstring("| n | average | min | max |"))
			for _, row := range []string{"| 1 | ", "| 2 | ", "| 3 | "} {
				Expect(out).To(ContainSubstring(row))
			}
			Expect(filepath.Join(dir, benchDatabase)).To(BeAnExistingFile())
			_, err = os.Stat(xlsx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an empty range", func() {
			_, err := execute("bench", "--from", "5", "--to", "2")

			Expect(srvErrors.IsInvalidConfigurationError(err)).To(BeTrue())
		})
	})
})
