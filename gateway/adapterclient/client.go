// Package adapterclient invokes one vendor adapter and surfaces its answer
// or a classified transport failure. Retry policy deliberately lives in the
// reasoning loop, not here, so backoff never compounds across layers.
package adapterclient

import (
	"context"
	"errors"
)

var (
	// ErrUnreachable means the adapter endpoint never answered (connection
	// refused, DNS failure and the like).
	ErrUnreachable = errors.New("adapter unreachable")

	// ErrTimeout means the adapter accepted the connection but did not
	// answer within the call deadline.
	ErrTimeout = errors.New("adapter timed out")
)

// Client invokes a vendor adapter at endpoint. A non-nil error is a
// transport-level failure; adapter rejections come back as a non-2xx status
// with the vendor's body, which the router relays verbatim.
type Client interface {
	Invoke(ctx context.Context, endpoint, tool, target string, params map[string]any) (int, map[string]any, error)
}
