package adapters

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Nokia simulates the Nokia RAN management surface (NetAct-style KPI,
// transport, and orchestration APIs).
type Nokia struct {
	base
}

func NewNokia(opts ...Option) *Nokia {
	return &Nokia{base: newBase(opts...)}
}

func (*Nokia) Vendor() string { return "Nokia" }

func (a *Nokia) Invoke(_ context.Context, tool, target string, _ map[string]any) (int, map[string]any) {
	log.Debug().Str("vendor", "Nokia").Str("tool", tool).Str("target", target).Msg("adapter invoked")

	switch tool {
	case NativeGetKPIs:
		if strings.Contains(target, "DUB-07") {
			return http.StatusOK, map[string]any{
				"vendor":              "Nokia",
				"api_version":         "5G-SA-R16",
				"cell_id":             target,
				"status":              "HEALTHY",
				"radio_signal_dbm":    -75,
				"packet_loss_percent": 0.1,
				"throughput_mbps":     850,
				"connected_users":     245,
				"timestamp":           a.timestamp(),
			}
		}
		return http.StatusOK, map[string]any{
			"vendor": "Nokia",
			"error":  "Cell ID not found in Nokia network",
		}

	case NativeMeasureLatency:
		switch {
		case strings.Contains(target, "DUB-07-FIBER"):
			return http.StatusOK, map[string]any{
				"vendor":              "Nokia",
				"link_id":             target,
				"status":              "DEGRADED",
				"latency_ms":          500,
				"packet_loss_percent": 45.0,
				"jitter_ms":           150,
				"link_type":           "fiber",
				"timestamp":           a.timestamp(),
			}
		case strings.Contains(target, "DUB-07-NTN"):
			return http.StatusOK, map[string]any{
				"vendor":              "Nokia",
				"link_id":             target,
				"status":              "HEALTHY",
				"latency_ms":          120,
				"packet_loss_percent": 0.5,
				"jitter_ms":           5,
				"link_type":           "satellite",
				"timestamp":           a.timestamp(),
			}
		default:
			return http.StatusOK, map[string]any{
				"vendor":              "Nokia",
				"link_id":             target,
				"status":              "HEALTHY",
				"latency_ms":          10,
				"packet_loss_percent": 0.0,
			}
		}

	case NativeInitiateFailover:
		return http.StatusOK, map[string]any{
			"vendor":           "Nokia",
			"operation":        "NTN_FAILOVER",
			"site_id":          target,
			"status":           "SUCCESS",
			"previous_link":    target + "-FIBER",
			"new_active_link":  target + "-NTN",
			"failover_time_ms": 1250,
			"affected_users":   245,
			"timestamp":        a.timestamp(),
		}

	default:
		return unknownTool("Nokia", tool)
	}
}
