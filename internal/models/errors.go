package models

import "errors"

// Custom errors
var (
	// ErrUnknownTeam indicates a team name outside the fitted vocabulary
	ErrUnknownTeam = errors.New("unknown team name")

	// ErrUnknownCode indicates a team code outside the fitted vocabulary
	ErrUnknownCode = errors.New("unknown team code")

	// ErrNotFound indicates a valid request with no matching data
	ErrNotFound = errors.New("no matching data found")

	// ErrMalformedInput indicates input rejected before prediction
	ErrMalformedInput = errors.New("malformed input")
)
