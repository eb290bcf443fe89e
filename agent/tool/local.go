package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/aura-netops/aura/agent/contract"
)

// LocalBackend answers tool calls from fixture telemetry without touching
// the gateway. It exists for offline runs and for exercising the reasoning
// loop in tests; payloads are deterministic for a given target.
type LocalBackend struct{}

func (LocalBackend) Call(_ context.Context, tool, target string) (map[string]any, error) {
	switch tool {
	case ToolGetCellKPIs:
		if strings.Contains(target, "DUB-07") {
			return map[string]any{
				"status":       "HEALTHY",
				"radio_signal": -75,
				"packet_loss":  "0.1%",
			}, nil
		}
		return map[string]any{
			"status": "UNKNOWN",
			"error":  "Cell ID not found",
		}, nil

	case ToolMeasureLinkLatency:
		switch {
		case strings.Contains(target, "DUB-07-FIBER"):
			return map[string]any{
				"status":      "DEGRADED",
				"latency_ms":  500,
				"packet_loss": "45%",
			}, nil
		case strings.Contains(target, "DUB-07-NTN"):
			return map[string]any{
				"status":      "HEALTHY",
				"latency_ms":  120,
				"packet_loss": "0.5%",
			}, nil
		default:
			return map[string]any{
				"status":      "HEALTHY",
				"latency_ms":  10,
				"packet_loss": "0%",
			}, nil
		}

	case ToolInitiateFailover:
		return map[string]any{
			"status":          "SUCCESS",
			"new_active_link": "DUB-07-NTN",
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", contractx.ErrUnknownTool, tool)
	}
}
