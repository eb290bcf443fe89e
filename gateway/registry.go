// Package gateway resolves canonical tool requests to vendor adapters and
// normalizes their responses into one envelope.
package gateway

import (
	"sort"
	"strings"
)

// Vendor names as they appear in routing decisions and response envelopes.
const (
	VendorNokia    = "Nokia"
	VendorEricsson = "Ericsson"
	VendorCisco    = "Cisco"
)

// Endpoints holds the adapter endpoint for each vendor. Empty entries leave
// the vendor unconfigured, which the router reports as a distinct failure
// from an unknown site.
type Endpoints struct {
	Nokia    string `envconfig:"NOKIA_ENDPOINT" split_words:"true"`
	Ericsson string `envconfig:"ERICSSON_ENDPOINT" split_words:"true"`
	Cisco    string `envconfig:"CISCO_ENDPOINT" split_words:"true"`
}

// Registry is the static routing table: site to vendor, vendor to adapter
// endpoint, canonical tool to vendor-native tool. Built once, read-only
// afterward, safe for concurrent lookups.
type Registry struct {
	siteVendor     map[string]string
	vendorEndpoint map[string]string
	toolNames      map[string]string
}

func NewRegistry(eps Endpoints) *Registry {
	vendorEndpoint := make(map[string]string, 3)
	for vendor, endpoint := range map[string]string{
		VendorNokia:    eps.Nokia,
		VendorEricsson: eps.Ericsson,
		VendorCisco:    eps.Cisco,
	} {
		if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
			vendorEndpoint[vendor] = trimmed
		}
	}

	return &Registry{
		siteVendor: map[string]string{
			"DUB-07": VendorNokia,
			"LON-15": VendorEricsson,
			"PAR-03": VendorCisco,
		},
		vendorEndpoint: vendorEndpoint,
		toolNames: map[string]string{
			"get_cell_kpis":         "get_kpis",
			"measure_link_latency":  "measure_latency",
			"initiate_ntn_failover": "initiate_failover",
		},
	}
}

func (r *Registry) VendorForSite(siteID string) (string, bool) {
	vendor, ok := r.siteVendor[siteID]
	return vendor, ok
}

func (r *Registry) EndpointForVendor(vendor string) (string, bool) {
	endpoint, ok := r.vendorEndpoint[vendor]
	return endpoint, ok
}

// VendorTool translates a canonical tool name to the vendor's vocabulary.
// Unmapped tools pass through unchanged so new canonical tools work before
// the table learns about them.
func (r *Registry) VendorTool(tool string) string {
	if native, ok := r.toolNames[tool]; ok {
		return native
	}
	return tool
}

// Sites returns all known site IDs, sorted. Included in unknown-site errors
// as a routing diagnostic.
func (r *Registry) Sites() []string {
	sites := make([]string, 0, len(r.siteVendor))
	for site := range r.siteVendor {
		sites = append(sites, site)
	}
	sort.Strings(sites)
	return sites
}

// ExtractSiteID derives the site from a target identifier: the first two
// hyphen-delimited segments ("DUB-07-FIBER" -> "DUB-07"). Targets with fewer
// segments are returned unchanged.
func ExtractSiteID(target string) string {
	parts := strings.Split(target, "-")
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return target
}
