package adapters

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Ericsson simulates the Ericsson ENM management surface.
type Ericsson struct {
	base
}

func NewEricsson(opts ...Option) *Ericsson {
	return &Ericsson{base: newBase(opts...)}
}

func (*Ericsson) Vendor() string { return "Ericsson" }

func (a *Ericsson) Invoke(_ context.Context, tool, target string, _ map[string]any) (int, map[string]any) {
	log.Debug().Str("vendor", "Ericsson").Str("tool", tool).Str("target", target).Msg("adapter invoked")

	switch tool {
	case NativeGetKPIs:
		if strings.Contains(target, "LON-15") {
			return http.StatusOK, map[string]any{
				"vendor":              "Ericsson",
				"api_version":         "ENM-22.1",
				"cell_id":             target,
				"status":              "HEALTHY",
				"rsrp_dbm":            -72,
				"sinr_db":             18,
				"packet_loss_percent": 0.05,
				"dl_throughput_mbps":  920,
				"ul_throughput_mbps":  380,
				"active_ues":          312,
				"timestamp":           a.timestamp(),
			}
		}
		return http.StatusOK, map[string]any{
			"vendor": "Ericsson",
			"error":  "Cell ID not found in Ericsson network",
		}

	case NativeMeasureLatency:
		return http.StatusOK, map[string]any{
			"vendor":              "Ericsson",
			"link_id":             target,
			"status":              "HEALTHY",
			"rtt_ms":              12,
			"packet_loss_percent": 0.02,
			"bandwidth_gbps":      10,
			"timestamp":           a.timestamp(),
		}

	case NativeInitiateFailover:
		return http.StatusOK, map[string]any{
			"vendor":          "Ericsson",
			"operation":       "LINK_FAILOVER",
			"site_id":         target,
			"status":          "SUCCESS",
			"new_active_link": target + "-BACKUP",
			"timestamp":       a.timestamp(),
		}

	default:
		return unknownTool("Ericsson", tool)
	}
}
