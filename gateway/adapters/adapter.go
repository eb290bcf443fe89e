// Package adapters holds the vendor-specific backends. Each adapter speaks
// its vendor's native tool vocabulary and returns vendor-shaped telemetry;
// the gateway router treats the payloads as opaque.
package adapters

import (
	"context"
	"fmt"
	"time"
)

// Vendor-native tool names, produced by the router's translation table.
const (
	NativeGetKPIs          = "get_kpis"
	NativeMeasureLatency   = "measure_latency"
	NativeInitiateFailover = "initiate_failover"
)

// Adapter executes one vendor's native operations. Implementations return an
// HTTP-equivalent status and a body; they never return Go errors, because a
// vendor rejection is data the caller relays, not a transport fault.
type Adapter interface {
	Vendor() string
	Invoke(ctx context.Context, tool, target string, params map[string]any) (int, map[string]any)
}

// Option configures an adapter. Clocks are injectable so telemetry
// timestamps are deterministic under test.
type Option func(*base)

func WithClock(now func() time.Time) Option {
	return func(b *base) {
		if now != nil {
			b.now = now
		}
	}
}

type base struct {
	now func() time.Time
}

func newBase(opts ...Option) base {
	b := base{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	return b
}

func (b base) timestamp() int64 {
	return b.now().Unix()
}

func unknownTool(vendor, tool string) (int, map[string]any) {
	return 400, map[string]any{
		"error":  fmt.Sprintf("Unknown tool: %s", tool),
		"vendor": vendor,
	}
}
