package rtapi

import "github.com/funcrtlib/go-funcrt/internal/rterr"

// ErrorKind classifies a runtime API failure as recoverable or
// unrecoverable. It is built with the Recoverable or Unrecoverable
// constructors and is immutable afterwards.
//
// Since: 0.0.0
type ErrorKind = rterr.ErrorKind

// Recoverable builds an ErrorKind for a failure that is safe to retry.
// Runtime implementations that receive recoverable errors should
// automatically retry requests.
//
// Since: 0.0.0
var Recoverable = rterr.Recoverable

// Unrecoverable builds an ErrorKind for a failure that must not be retried.
// An unrecoverable error should cause the runtime implementation to report a
// fatal initialization failure and then shut down gracefully.
//
// Since: 0.0.0
var Unrecoverable = rterr.Unrecoverable

// APIError is an error produced by a runtime API client operation,
// classified at construction time. Callers branch on IsRecoverable and never
// reclassify.
//
// Since: 0.0.0
type APIError = rterr.APIError

// NewAPIError wraps an ErrorKind into an APIError, starting a fresh error
// chain
//
// Since: 0.0.0
var NewAPIError = rterr.NewAPIError

// WrapAPIError wraps an ErrorKind together with the lower-level error that
// triggered it, preserving an already captured backtrace when the cause
// carries one
//
// Since: 0.0.0
var WrapAPIError = rterr.WrapAPIError

// RuntimeAPIErrorType is the fixed error type tag reported for APIError
// values, independent of their ErrorKind variant
//
// Since: 0.0.0
const RuntimeAPIErrorType = rterr.RuntimeAPIErrorType
