// Package apperror classifies reconciliation failures so the webhook layer can
// decide between acknowledging an event and asking the processor to redeliver.
package apperror

import (
	"errors"
	"fmt"
)

// Kind partitions failures by how the webhook contract must react to them.
type Kind string

const (
	// KindAuthentication - bad, missing or stale signature. Terminal, HTTP 400,
	// the request is never recorded as a trusted event.
	KindAuthentication Kind = "authentication"

	// KindMalformedPayload - the event payload is missing required fields or is
	// structurally invalid. Permanent: ledgered with the error, HTTP 200.
	KindMalformedPayload Kind = "malformed_payload"

	// KindNotFound - a referenced entity is not visible yet (write race with the
	// initiating request). Retryable: HTTP 500 so the processor redelivers.
	KindNotFound Kind = "not_found"

	// KindStateConflict - the event asks for a transition that violates the
	// forward-only invariant. Permanent: retrying cannot help.
	KindStateConflict Kind = "state_conflict"

	// KindStoreUnavailable - the entity store failed transiently. Retryable.
	KindStoreUnavailable Kind = "store_unavailable"

	// KindUnknown - unclassified failure. Treated as retryable so nothing
	// money-relevant is dropped silently.
	KindUnknown Kind = "unknown"
)

// Error carries a failure kind alongside the usual error chain.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error. If err is already classified its kind
// wins, so repository errors keep their original classification through
// service-level wrapping.
func Wrap(kind Kind, err error, message string) *Error {
	if existing := classified(err); existing != nil {
		kind = existing.Kind
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the classification of err, or KindUnknown.
func KindOf(err error) Kind {
	if e := classified(err); e != nil {
		return e.Kind
	}
	return KindUnknown
}

// Retryable reports whether the processor should redeliver the event.
// Unclassified errors count as retryable: an idempotent retry is always safe,
// dropping an event is not.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindNotFound, KindStoreUnavailable, KindUnknown:
		return true
	default:
		return false
	}
}

func classified(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
