package domain

import "errors"

var (
	// ErrNoActiveResume is returned when a mutation targets an empty store.
	ErrNoActiveResume = errors.New("no active resume")

	// ErrNotFound is returned when an id does not match any stored entity.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned on a failed login attempt. It covers
	// both unknown usernames and wrong passwords so callers cannot tell the
	// two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
