package common

import "errors"

var (
	// ErrNotFound is returned by lookups that found nothing.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated is returned by operations that need a session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden is returned when the decoded role does not allow the action.
	ErrForbidden = errors.New("forbidden")
)
