package errors_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/tupyy/bogorace/pkg/errors"
)

var _ = Describe("Errors", func() {
	Context("PoisonedStateError", func() {
		It("should carry the worker and the panic value", func() {
			err := srvErrors.NewPoisonedStateError(3, "boom")

			Expect(err.Worker()).To(Equal(3))
			Expect(err.Error()).To(Equal("result slot poisoned by worker 3: boom"))
		})

		It("should be detected through wrapping", func() {
			err := fmt.Errorf("race failed: %w", srvErrors.NewPoisonedStateError(1, "boom"))

			Expect(srvErrors.IsPoisonedStateError(err)).To(BeTrue())
			Expect(srvErrors.IsWorkerFailedError(err)).To(BeFalse())
		})
	})

	Context("WorkerFailedError", func() {
		// Given a worker failure wrapping a cause
		// When it is inspected
		// Then the cause stays reachable with errors.Is
		It("should unwrap its cause", func() {
			cause := errors.New("worker panicked")
			err := srvErrors.NewWorkerFailedError(2, cause)

			Expect(err.Worker()).To(Equal(2))
			Expect(err.Unwrap()).To(Equal(cause))
			Expect(errors.Is(err, cause)).To(BeTrue())
			Expect(err.Error()).To(Equal("worker 2 terminated abnormally: worker panicked"))
			Expect(srvErrors.IsWorkerFailedError(fmt.Errorf("wrapped: %w", err))).To(BeTrue())
		})
	})

	Context("ResultMismatchError", func() {
		It("should render both sequences", func() {
			err := srvErrors.NewResultMismatchError([]int{2, 1}, []int{1, 2})

			Expect(err.Error()).To(Equal("published result [2 1] does not match reference [1 2]"))
			Expect(srvErrors.IsResultMismatchError(err)).To(BeTrue())
		})
	})

	Context("InvalidConfigurationError", func() {
		It("should name the field", func() {
			err := srvErrors.NewInvalidConfigurationError("workers", "must not be negative")

			Expect(err.Error()).To(Equal(`invalid configuration "workers": must not be negative`))
			Expect(srvErrors.IsInvalidConfigurationError(err)).To(BeTrue())
		})
	})

	DescribeTable("should not match unrelated errors",
		func(is func(error) bool) {
			Expect(is(errors.New("other"))).To(BeFalse())
			Expect(is(nil)).To(BeFalse())
		},
		Entry("poisoned state", srvErrors.IsPoisonedStateError),
		Entry("worker failed", srvErrors.IsWorkerFailedError),
		Entry("result mismatch", srvErrors.IsResultMismatchError),
		Entry("invalid configuration", srvErrors.IsInvalidConfigurationError),
	)
})
