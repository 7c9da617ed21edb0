package clierr

import (
	"errors"
	"fmt"
)

// Process exit codes. Data errors and usage errors are distinguished so
// callers and tests can assert on failure kind, not just failure occurrence.
const (
	CodeData  = 1
	CodeUsage = 2
)

// ExitError carries an explicit process exit code and wraps its cause.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// Data wraps a data-level failure (bad input content).
func Data(cause error) error {
	if cause == nil {
		return nil
	}
	return &ExitError{code: CodeData, cause: cause}
}

// Usagef reports a usage-level failure (bad invocation).
func Usagef(format string, args ...any) error {
	return &ExitError{code: CodeUsage, msg: fmt.Sprintf(format, args...)}
}

// Usage wraps a usage-level failure.
func Usage(cause error) error {
	if cause == nil {
		return nil
	}
	return &ExitError{code: CodeUsage, cause: cause}
}

// ExitCodeOf extracts the exit code from any error, defaulting to CodeData
// so main stays dumb.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return CodeData
}
