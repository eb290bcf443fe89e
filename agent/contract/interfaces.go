package contract

import "context"

// Generator is the text-generation backend. Implementations must return
// errors classified with the sentinels in errors.go so the reasoning loop
// can decide whether an attempt is retryable.
type Generator interface {
	Generate(ctx context.Context, system string, msgs []Message) (string, error)
}
