package errors

import (
	"errors"
	"fmt"
)

// PoisonedStateError is returned when a searcher died while holding the result slot lock.
type PoisonedStateError struct {
	worker int
	cause  any
}

func NewPoisonedStateError(worker int, cause any) *PoisonedStateError {
	return &PoisonedStateError{worker: worker, cause: cause}
}

func (e *PoisonedStateError) Error() string {
	return fmt.Sprintf("result slot poisoned by worker %d: %v", e.worker, e.cause)
}

func (e *PoisonedStateError) Worker() int {
	return e.worker
}

func IsPoisonedStateError(err error) bool {
	var e *PoisonedStateError
	return errors.As(err, &e)
}

// WorkerFailedError is returned when a searcher terminated abnormally and could not be joined.
type WorkerFailedError struct {
	worker int
	err    error
}

func NewWorkerFailedError(worker int, err error) *WorkerFailedError {
	return &WorkerFailedError{worker: worker, err: err}
}

func (e *WorkerFailedError) Error() string {
	return fmt.Sprintf("worker %d terminated abnormally: %v", e.worker, e.err)
}

func (e *WorkerFailedError) Unwrap() error {
	return e.err
}

func (e *WorkerFailedError) Worker() int {
	return e.worker
}

func IsWorkerFailedError(err error) bool {
	var e *WorkerFailedError
	return errors.As(err, &e)
}

type ResultMismatchError struct {
	got      string
	expected string
}

func NewResultMismatchError(got, expected any) *ResultMismatchError {
	return &ResultMismatchError{got: fmt.Sprint(got), expected: fmt.Sprint(expected)}
}

func (e *ResultMismatchError) Error() string {
	return fmt.Sprintf("published result %s does not match reference %s", e.got, e.expected)
}

func IsResultMismatchError(err error) bool {
	var e *ResultMismatchError
	return errors.As(err, &e)
}

type InvalidConfigurationError struct {
	field  string
	reason string
}

func NewInvalidConfigurationError(field, reason string) *InvalidConfigurationError {
	return &InvalidConfigurationError{field: field, reason: reason}
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %q: %s", e.field, e.reason)
}

func IsInvalidConfigurationError(err error) bool {
	var e *InvalidConfigurationError
	return errors.As(err, &e)
}
