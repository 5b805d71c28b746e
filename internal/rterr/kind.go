package rterr

import (
	"errors"
	"fmt"
)

// kindTag specifies the variant of an ErrorKind value
type kindTag uint32

const (
	// ignore zero value of iota
	_ kindTag = iota
	// recoverableTag indicates a failure that is safe to retry
	recoverableTag
	// unrecoverableTag indicates a failure that must not be retried
	unrecoverableTag
)

// ErrorKind classifies a runtime API failure as recoverable or unrecoverable.
// Clients that receive a recoverable error should retry the request that
// triggered it; an unrecoverable error should cause the client to report a
// fatal initialization failure and stop processing the current invocation.
//
// An ErrorKind is built with the Recoverable or Unrecoverable constructors and
// is immutable afterwards; classification happens exactly once, at the point a
// failure is first recognized.
type ErrorKind struct {
	tag     kindTag
	message string
}

// Recoverable builds an ErrorKind for a failure that is safe to retry. The
// message is a human-readable description of the cause.
func Recoverable(message string) ErrorKind {
	return ErrorKind{tag: recoverableTag, message: message}
}

// Unrecoverable builds an ErrorKind for a failure that must not be retried.
// The message is a human-readable description of the cause.
func Unrecoverable(message string) ErrorKind {
	return ErrorKind{tag: unrecoverableTag, message: message}
}

// GetMessage returns the human-readable cause description given to the
// ErrorKind constructor
func (k ErrorKind) GetMessage() string {
	return k.message
}

// String returns the rendering of this kind, including its variant label
func (k ErrorKind) String() string {
	switch k.tag {
	case recoverableTag:
		return fmt.Sprintf("Recoverable API error: %s", k.message)
	case unrecoverableTag:
		return fmt.Sprintf("Unrecoverable API error: %s", k.message)
	}
	// NOTE: this case never happens, an invariant condition of this type has
	// not been respected. If we are here, it means an ErrorKind value was
	// created without the package constructors (implementation error).
	panic(
		errors.New("invalid ErrorKind was created"),
	)
}

// isRecoverable matches every variant of the closed kind set on purpose;
// adding a new variant must be a visible decision about its recoverability
// rather than falling into a catch-all.
func (k ErrorKind) isRecoverable() bool {
	switch k.tag {
	case recoverableTag:
		return true
	case unrecoverableTag:
		return false
	}
	panic(
		errors.New("invalid ErrorKind was created"),
	)
}
