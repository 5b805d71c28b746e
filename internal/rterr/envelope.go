package rterr

// ErrorEnvelope is the wire format for error reports sent to the runtime
// APIs. It is used both for invocation error responses and fail-init calls.
// The field names are a fixed contract point; remote consumers dispatch on
// ErrorType.
type ErrorEnvelope struct {
	// ErrorMessage is the message generated by the application
	ErrorMessage string `json:"errorMessage"`
	// ErrorType is the stable tag identifying the error's category. Normally
	// this value is populated from the ErrorType method of the TypedError
	// capability.
	ErrorType string `json:"errorType"`
	// StackTrace holds the captured stack as one element per trace line. It
	// is nil, and absent from the serialized record, when no backtrace was
	// collected; it is never an empty sequence.
	StackTrace []string `json:"stackTrace,omitempty"`
}

// NewErrorEnvelope builds the wire record for the given error. The message
// and type tag come straight from the TypedError capability; the stack trace
// is populated only when the value also carries a non-empty backtrace, which
// in turn only happens when the ambient FUNCRT_BACKTRACE toggle enabled
// collection at the point the error was created.
//
// Construction never fails; it is a total function over any TypedError.
func NewErrorEnvelope(err TypedError) ErrorEnvelope {
	env := ErrorEnvelope{
		ErrorMessage: err.Error(),
		ErrorType:    err.ErrorType(),
	}

	if source, ok := err.(Backtracer); ok {
		if bt := source.Backtrace(); bt != nil && len(bt.Lines()) > 0 {
			ll.Trace("begin backtrace collection")
			env.StackTrace = bt.Lines()
			ll.Trace("completed backtrace collection")
		}
	}

	return env
}
