package twitch

import "errors"

var (
	// ErrUnauthorized reports a rejected access token.
	ErrUnauthorized = errors.New("failed to authenticate with the twitch service")

	// ErrForbidden reports a token missing the scopes a request requires.
	ErrForbidden = errors.New("the provided token is missing required scopes")

	// ErrNoPagination reports a list response without pagination information.
	ErrNoPagination = errors.New("response is missing pagination information")
)
