/*
Package rtapi offers the error reporting surface of the funcrt runtime API
client: it converts internal failures into a structured, serializable error
envelope, and classifies failures as recoverable or unrecoverable so the
calling runtime can decide whether to retry a request or abort and report a
fatal initialization failure.

Why Classified Errors

A runtime client talks to a control-plane API over the network, and the two
families of failure it runs into need opposite handling:

* A transient failure (connection reset, throttling response) should be
retried transparently; surfacing it upstream would kill invocations that
could have succeeded a moment later.

* A terminal failure (rejected credentials, malformed configuration) must
never be retried; retrying it hides the real problem and burns the
invocation deadline.

rtapi forces that decision to be made exactly once, at the point a failure
is first recognized, by requiring every error entering the system to carry
an ErrorKind.

ErrorKind and APIError

An ErrorKind is built with one of two constructors

	kind := rtapi.Recoverable("connection reset by control plane")
	kind := rtapi.Unrecoverable("runtime configuration rejected")

and wrapped into an APIError with NewAPIError, or with WrapAPIError when a
lower-level cause should be preserved

	err := rtapi.WrapAPIError(kind, causeErr)

Callers never reclassify; they only branch on the classification

	if apiErr.IsRecoverable() {
		// retry the request
	} else {
		// report a fatal initialization failure and stop
	}

ErrorEnvelope

When an error must be reported to the control plane, it is converted into
the wire-format envelope

	env := rtapi.NewErrorEnvelope(apiErr)

The envelope is a flat record with the fields errorMessage, errorType and
stackTrace. Any error type can be enveloped as long as it satisfies the
TypedError capability (a display string plus a stable type tag); plain
application errors are adapted with AsTypedError and get the default
GoRuntimeError tag.

Backtraces

Stack capture is gated by the FUNCRT_BACKTRACE environment variable, read
by the capture facility itself. When the toggle is off the envelope's
stackTrace field is absent, never an empty sequence.
*/
package rtapi
