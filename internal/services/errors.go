package services

import "errors"

var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords, so callers cannot tell whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned when registering a username that exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrForbidden is returned when the acting user does not own the
	// resource they are trying to change.
	ErrForbidden = errors.New("not the owner of this resource")

	// ErrEmptyText is returned when mood analysis is requested for empty or
	// whitespace-only text. No external call is made in that case.
	ErrEmptyText = errors.New("content is required for mood analysis")

	// ErrNotConfigured is returned when the mood classifier has no API
	// credentials. Unlike transport failures, misconfiguration is surfaced
	// to the caller instead of defaulting to neutral.
	ErrNotConfigured = errors.New("mood classifier is not configured: missing API key")
)
