package service

import "errors"

var (
	// ErrEmptyMessage rejects a chat message that is empty after trimming,
	// before any persistence is attempted.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrInvalidMaxTokens rejects a settings value that is not a positive integer.
	ErrInvalidMaxTokens = errors.New("max_tokens must be a positive integer")

	// ErrStorage wraps any persistence-layer fault. The attempted write is
	// rolled back; callers translate this into a user notice.
	ErrStorage = errors.New("storage failure")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
