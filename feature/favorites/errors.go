package favorites

import (
	"errors"
	"net/http"

	"leetcode-tracker/core/leetcode"
	"leetcode-tracker/core/snapshot"
)

// Kind classifies sync failures.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindFetch        Kind = "fetch"
	KindSnapshotRead Kind = "snapshot_read"
	KindWrite        Kind = "write"
)

// Error is the failure half of a sync result.
type Error struct {
	Kind Kind
	// Op names the step that failed, e.g. "fetch questions".
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf classifies err. It returns "" for a nil error.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	var fetchErr *leetcode.FetchError
	var readErr *snapshot.ReadError
	var writeErr *snapshot.WriteError
	switch {
	case errors.As(err, &fetchErr):
		return KindFetch
	case errors.As(err, &readErr):
		return KindSnapshotRead
	case errors.As(err, &writeErr):
		return KindWrite
	default:
		return KindUnknown
	}
}

// StatusCode maps a kind to the HTTP status returned by the handler.
func (k Kind) StatusCode() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindFetch:
		return http.StatusBadGateway
	case KindSnapshotRead:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
