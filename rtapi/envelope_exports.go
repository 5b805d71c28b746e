package rtapi

import "github.com/funcrtlib/go-funcrt/internal/rterr"

// ErrorEnvelope is the wire format for error reports sent to the runtime
// APIs, used both for invocation error responses and fail-init calls
//
// Since: 0.0.0
type ErrorEnvelope = rterr.ErrorEnvelope

// NewErrorEnvelope builds the wire record for the given error. Construction
// never fails; the stackTrace field is populated only when the error carries
// a captured backtrace.
//
// Since: 0.0.0
var NewErrorEnvelope = rterr.NewErrorEnvelope

// TypedError is the capability an error value needs to be reported through
// the runtime APIs: a display string plus a stable type tag a remote
// consumer can dispatch on
//
// Since: 0.0.0
type TypedError = rterr.TypedError

// Backtracer is the optional capability of carrying a captured backtrace
//
// Since: 0.0.0
type Backtracer = rterr.Backtracer

// AsTypedError adapts any error to the TypedError capability, tagging plain
// errors with the default GoRuntimeError type
//
// Since: 0.0.0
var AsTypedError = rterr.AsTypedError

// TypedErrorf builds a TypedError with the default GoRuntimeError tag from a
// format string
//
// Since: 0.0.0
var TypedErrorf = rterr.TypedErrorf

// GoRuntimeErrorType is the default error type tag used for application
// errors that do not declare a more specific one
//
// Since: 0.0.0
const GoRuntimeErrorType = rterr.GoRuntimeErrorType

// Backtrace is an ordered textual capture of the call stack at the point a
// runtime API error was created
//
// Since: 0.0.0
type Backtrace = rterr.Backtrace

// CaptureBacktrace records the call stack of the caller, skipping the given
// number of additional frames. It returns nil when the FUNCRT_BACKTRACE
// toggle is disabled.
//
// Since: 0.0.0
var CaptureBacktrace = rterr.CaptureBacktrace
