package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSiteID(t *testing.T) {
	cases := map[string]string{
		"DUB-07":         "DUB-07",
		"DUB-07-FIBER":   "DUB-07",
		"DUB-07-NTN":     "DUB-07",
		"LON-15-CELL-04": "LON-15",
		"PAR-03":         "PAR-03",
		"SINGLE":         "SINGLE",
		"":               "",
	}
	for target, want := range cases {
		assert.Equal(t, want, ExtractSiteID(target), "target %q", target)
	}
}

func TestVendorForSite(t *testing.T) {
	r := NewRegistry(Endpoints{})

	vendor, ok := r.VendorForSite("DUB-07")
	require.True(t, ok)
	assert.Equal(t, VendorNokia, vendor)

	vendor, ok = r.VendorForSite("LON-15")
	require.True(t, ok)
	assert.Equal(t, VendorEricsson, vendor)

	vendor, ok = r.VendorForSite("PAR-03")
	require.True(t, ok)
	assert.Equal(t, VendorCisco, vendor)

	_, ok = r.VendorForSite("NYC-01")
	assert.False(t, ok)
}

func TestEndpointForVendor(t *testing.T) {
	r := NewRegistry(Endpoints{Nokia: " http://nokia:9001 "})

	endpoint, ok := r.EndpointForVendor(VendorNokia)
	require.True(t, ok)
	assert.Equal(t, "http://nokia:9001", endpoint, "endpoints are trimmed")

	_, ok = r.EndpointForVendor(VendorEricsson)
	assert.False(t, ok, "blank endpoint leaves the vendor unconfigured")
}

func TestVendorToolTranslation(t *testing.T) {
	r := NewRegistry(Endpoints{})

	assert.Equal(t, "get_kpis", r.VendorTool("get_cell_kpis"))
	assert.Equal(t, "measure_latency", r.VendorTool("measure_link_latency"))
	assert.Equal(t, "initiate_failover", r.VendorTool("initiate_ntn_failover"))
	assert.Equal(t, "future_tool", r.VendorTool("future_tool"), "unmapped tools pass through")
}

func TestSitesSorted(t *testing.T) {
	assert.Equal(t, []string{"DUB-07", "LON-15", "PAR-03"}, NewRegistry(Endpoints{}).Sites())
}
