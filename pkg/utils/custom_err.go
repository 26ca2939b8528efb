package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnauthenticated      = errors.New("not authenticated")
	ErrAccountNotFound      = errors.New("user not found")
	ErrQuotaExhausted       = errors.New("usage limit reached")
	ErrNoMatchingVibe       = errors.New("no matching vibe")
	ErrInsufficientVenues   = errors.New("insufficient venues")
	ErrMalformedModelOutput = errors.New("AI response was not in the expected format")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
	ErrDatabaseError        = errors.New("database error")
)
