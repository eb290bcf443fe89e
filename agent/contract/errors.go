package contract

import "errors"

var (
	// ErrRateLimited marks a model call rejected by upstream throttling. It
	// is the only error class the reasoning loop retries.
	ErrRateLimited = errors.New("model rate limited")

	// ErrService marks a non-retryable backend failure (the service answered
	// and said no).
	ErrService = errors.New("model service error")

	// ErrTransport marks an unreachable or timed-out backend.
	ErrTransport = errors.New("transport failure")

	ErrUnknownTool    = errors.New("unknown tool")
	ErrToolExecution  = errors.New("tool execution failed")
	ErrIterationLimit = errors.New("iteration limit exceeded")

	ErrValidation = errors.New("validation failed")
)
