package adapters

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Cisco simulates the Cisco DNA Center and SD-WAN transport surface.
type Cisco struct {
	base
}

func NewCisco(opts ...Option) *Cisco {
	return &Cisco{base: newBase(opts...)}
}

func (*Cisco) Vendor() string { return "Cisco" }

func (a *Cisco) Invoke(_ context.Context, tool, target string, _ map[string]any) (int, map[string]any) {
	log.Debug().Str("vendor", "Cisco").Str("tool", tool).Str("target", target).Msg("adapter invoked")

	switch tool {
	case NativeGetKPIs:
		if strings.Contains(target, "PAR-03") {
			return http.StatusOK, map[string]any{
				"vendor":         "Cisco",
				"api_version":    "DNA-Center-2.3",
				"device_id":      target,
				"status":         "REACHABLE",
				"cpu_percent":    45,
				"memory_percent": 62,
				"uptime_hours":   720,
				"timestamp":      a.timestamp(),
			}
		}
		return http.StatusOK, map[string]any{
			"vendor": "Cisco",
			"error":  "Device not found in Cisco network",
		}

	case NativeMeasureLatency:
		return http.StatusOK, map[string]any{
			"vendor":                   "Cisco",
			"path_id":                  target,
			"status":                   "UP",
			"latency_ms":               8,
			"loss_percent":             0.01,
			"jitter_ms":                2,
			"available_bandwidth_mbps": 9500,
			"timestamp":                a.timestamp(),
		}

	case NativeInitiateFailover:
		return http.StatusOK, map[string]any{
			"vendor":              "Cisco",
			"operation":           "PATH_PREFERENCE_CHANGE",
			"site_id":             target,
			"status":              "SUCCESS",
			"new_primary_path":    target + "-MPLS-BACKUP",
			"convergence_time_ms": 800,
			"timestamp":           a.timestamp(),
		}

	default:
		return unknownTool("Cisco", tool)
	}
}
