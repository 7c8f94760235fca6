package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrRateLimited   = errors.New("rate limit exceeded, try again later")
	ErrInvalidConfig = errors.New("invalid configuration")
)
