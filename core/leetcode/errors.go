package leetcode

import "fmt"

// FetchError is returned when a question list could not be retrieved, either
// because the request failed or because the response had an unexpected shape.
type FetchError struct {
	// Slug is the list that was requested.
	Slug FavoriteSlug
	// StatusCode is the HTTP status, or 0 if no response was received.
	StatusCode int
	// Reason is a short description of what went wrong.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.Slug, e.Reason)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
