package cli

import "fmt"

// ExitCoder lets an error returned by a command choose the process exit code. Other errors exit with 1.
type ExitCoder interface {
	error
	ExitCode() int
}

// UsageError reports a malformed invocation (unknown flag, wrong arg count, bad flag value). Run prints Message, then the command's help, and exits with 2.
type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }
func (e UsageError) ExitCode() int { return 2 }

// Usagef builds a UsageError like fmt.Sprintf.
func Usagef(format string, args ...any) UsageError {
	return UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitError exits with Code. With a nil Err, Run prints nothing: the exit code alone is the result (ex: "the inputs differ").
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error { return e.Err }
func (e ExitError) ExitCode() int { return e.Code }
