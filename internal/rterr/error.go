package rterr

import (
	"errors"
)

// RuntimeAPIErrorType is the error type tag reported for APIError values. The
// tag is fixed for the whole error family, independent of the ErrorKind
// variant, so a remote consumer can dispatch on it.
const RuntimeAPIErrorType = "RuntimeAPIError"

// APIError is an error produced by a runtime API client operation, classified
// at construction time as recoverable or unrecoverable. It carries the
// triggering cause (if any) and the backtrace captured when the failure was
// first recognized.
//
// An APIError is created already classified and is immutable afterwards;
// callers only inspect it, branching on IsRecoverable to decide between
// retrying the request and reporting a fatal initialization failure.
type APIError struct {
	kind      ErrorKind
	cause     error
	backtrace *Backtrace
}

// NewAPIError wraps an ErrorKind into an APIError, starting a fresh error
// chain. A backtrace is captured at the call site when the ambient
// FUNCRT_BACKTRACE toggle enables collection.
func NewAPIError(kind ErrorKind) *APIError {
	return &APIError{
		kind:      kind,
		backtrace: CaptureBacktrace(1),
	}
}

// WrapAPIError wraps an ErrorKind together with the lower-level error that
// triggered it. When the cause already carries a backtrace anywhere in its
// chain, that backtrace is preserved rather than recaptured, so the trace
// keeps pointing at the original point of failure.
func WrapAPIError(kind ErrorKind, cause error) *APIError {
	err := &APIError{
		kind:  kind,
		cause: cause,
	}

	var source Backtracer
	if cause != nil && errors.As(cause, &source) {
		err.backtrace = source.Backtrace()
	}
	if err.backtrace == nil {
		err.backtrace = CaptureBacktrace(1)
	}
	return err
}

// IsRecoverable returns true if the API error is recoverable and the request
// that triggered it should be retried
func (e *APIError) IsRecoverable() bool {
	return e.kind.isRecoverable()
}

// GetKind returns the classification assigned when this error was created
func (e *APIError) GetKind() ErrorKind {
	return e.kind
}

// Error returns an error message, including the variant label of the kind
func (e *APIError) Error() string {
	return e.kind.String()
}

// Unwrap returns the lower-level error that triggered this one (if any)
func (e *APIError) Unwrap() error {
	return e.cause
}

// Cause returns the lower-level error that triggered this one (if any)
func (e *APIError) Cause() error {
	return e.cause
}

// Backtrace returns the stack captured when the failure was first recognized,
// or nil when collection was disabled
func (e *APIError) Backtrace() *Backtrace {
	return e.backtrace
}

// ErrorType returns the fixed type tag for the runtime API error family
func (e *APIError) ErrorType() string {
	return RuntimeAPIErrorType
}

// KVs returns a data bag map that may be used in structured logging
func (e *APIError) KVs() map[string]interface{} {
	kvs := make(map[string]interface{})
	kvs["runtime.error.type"] = e.ErrorType()
	kvs["runtime.error.message"] = e.kind.GetMessage()
	kvs["runtime.error.recoverable"] = e.IsRecoverable()
	if e.cause != nil {
		kvs["runtime.error.cause"] = e.cause.Error()
	}
	if e.backtrace != nil {
		kvs["stacktrace"] = e.backtrace.String()
	}
	return kvs
}
