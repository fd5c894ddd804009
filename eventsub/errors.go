package eventsub

import "errors"

var (
	// ErrNotWelcome reports a handshake whose first message was not a
	// session welcome.
	ErrNotWelcome = errors.New("first message was not a session welcome")

	// ErrNoSessionID reports a welcome message without a session id.
	ErrNoSessionID = errors.New("welcome message did not contain a session id")
)
