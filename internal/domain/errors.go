package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSession     = errors.New("invalid session")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrChatBusy           = errors.New("a chat request is already in flight")
	ErrEmptyQuestion      = errors.New("empty question")
	ErrEmptyTranscript    = errors.New("transcript is empty")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
