package rterr

import (
	"fmt"
)

// GoRuntimeErrorType is the default error type tag used for application
// errors that do not declare a more specific one
const GoRuntimeErrorType = "GoRuntimeError"

// TypedError is the capability an error value needs to be reported through
// the runtime APIs: a display string plus a stable type tag a remote
// consumer can dispatch on. APIError implements it; application error types
// may implement it directly to report their own tag.
type TypedError interface {
	error

	// ErrorType returns the stable type tag identifying this error's
	// category, independent of whether it is recoverable
	ErrorType() string
}

// Backtracer is the optional capability of carrying a captured backtrace
type Backtracer interface {
	Backtrace() *Backtrace
}

// runtimeError adapts a plain application error to the TypedError capability
// using the default GoRuntimeError tag
type runtimeError struct {
	err       error
	backtrace *Backtrace
}

// AsTypedError adapts any error to the TypedError capability. Errors that
// already implement TypedError are returned as is; anything else is tagged
// GoRuntimeError and gets a backtrace captured at the call site (subject to
// the ambient FUNCRT_BACKTRACE toggle).
func AsTypedError(err error) TypedError {
	if terr, ok := err.(TypedError); ok {
		return terr
	}
	return &runtimeError{
		err:       err,
		backtrace: CaptureBacktrace(1),
	}
}

// TypedErrorf builds a TypedError with the default GoRuntimeError tag from a
// format string, capturing a backtrace at the call site (subject to the
// ambient FUNCRT_BACKTRACE toggle)
func TypedErrorf(format string, args ...interface{}) TypedError {
	return &runtimeError{
		err:       fmt.Errorf(format, args...),
		backtrace: CaptureBacktrace(1),
	}
}

// Error returns the message of the adapted application error
func (re *runtimeError) Error() string {
	return re.err.Error()
}

// ErrorType returns the default type tag for unclassified application errors
func (re *runtimeError) ErrorType() string {
	return GoRuntimeErrorType
}

// Unwrap returns the adapted application error
func (re *runtimeError) Unwrap() error {
	return re.err
}

// Backtrace returns the stack captured when the error was adapted, or nil
// when collection was disabled
func (re *runtimeError) Backtrace() *Backtrace {
	return re.backtrace
}
