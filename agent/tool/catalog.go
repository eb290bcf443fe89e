package tool

import "context"

// Canonical tool names shared by the catalogue, the gateway router, and the
// vendor registries.
const (
	ToolGetCellKPIs        = "get_cell_kpis"
	ToolMeasureLinkLatency = "measure_link_latency"
	ToolInitiateFailover   = "initiate_ntn_failover"
)

// Backend resolves a canonical tool invocation to a telemetry payload. The
// gateway client implements it for routed execution; LocalBackend serves the
// same calls from deterministic fixture data.
type Backend interface {
	Call(ctx context.Context, tool, target string) (map[string]any, error)
}

// Catalog builds the standard AURA tool set on top of a backend.
func Catalog(backend Backend) []Descriptor {
	run := func(name string) Executor {
		return func(ctx context.Context, param string) (map[string]any, error) {
			return backend.Call(ctx, name, param)
		}
	}

	return []Descriptor{
		{
			Name:        ToolGetCellKPIs,
			Description: "Retrieves Key Performance Indicators (KPIs) for a specific network cell. Use this to check the health status of a cell site.",
			Params: map[string]string{
				"cell_id": "The ID of the cell to check (e.g., 'DUB-07')",
			},
			Run: run(ToolGetCellKPIs),
		},
		{
			Name:        ToolMeasureLinkLatency,
			Description: "Measures latency on a specific backhaul link (fiber or NTN). Use this to diagnose transport network issues.",
			Params: map[string]string{
				"link_id": "The ID of the link to measure (e.g., 'DUB-07-FIBER' or 'DUB-07-NTN')",
			},
			Run: run(ToolMeasureLinkLatency),
		},
		{
			Name:        ToolInitiateFailover,
			Description: "Initiates a traffic failover to the Non-Terrestrial Network (NTN) backup. This is a SERVICE-IMPACTING change and requires human approval.",
			Params: map[string]string{
				"site_id": "The site ID to failover (e.g., 'DUB-07')",
			},
			SideEffecting: true,
			Run:           run(ToolInitiateFailover),
		},
	}
}
