package adapters

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() Option {
	return WithClock(func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	})
}

func TestNokiaKPIs(t *testing.T) {
	a := NewNokia(fixedClock())

	status, body := a.Invoke(context.Background(), NativeGetKPIs, "DUB-07", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Nokia", body["vendor"])
	assert.Equal(t, "5G-SA-R16", body["api_version"])
	assert.Equal(t, "HEALTHY", body["status"])
	assert.Equal(t, int64(1773480600), body["timestamp"], "timestamps come from the injected clock")

	_, body = a.Invoke(context.Background(), NativeGetKPIs, "LON-15", nil)
	assert.Equal(t, "Cell ID not found in Nokia network", body["error"], "foreign sites are not in this vendor's inventory")
}

func TestNokiaLatencyProfiles(t *testing.T) {
	a := NewNokia(fixedClock())

	_, fiber := a.Invoke(context.Background(), NativeMeasureLatency, "DUB-07-FIBER", nil)
	assert.Equal(t, "DEGRADED", fiber["status"])
	assert.Equal(t, 500, fiber["latency_ms"])
	assert.Equal(t, 45.0, fiber["packet_loss_percent"])

	_, ntn := a.Invoke(context.Background(), NativeMeasureLatency, "DUB-07-NTN", nil)
	assert.Equal(t, "HEALTHY", ntn["status"])
	assert.Equal(t, 120, ntn["latency_ms"])
	assert.Equal(t, "satellite", ntn["link_type"])
}

func TestNokiaFailover(t *testing.T) {
	a := NewNokia(fixedClock())

	status, body := a.Invoke(context.Background(), NativeInitiateFailover, "DUB-07", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "SUCCESS", body["status"])
	assert.Equal(t, "DUB-07-FIBER", body["previous_link"])
	assert.Equal(t, "DUB-07-NTN", body["new_active_link"])
}

func TestEricssonKPIs(t *testing.T) {
	a := NewEricsson(fixedClock())

	status, body := a.Invoke(context.Background(), NativeGetKPIs, "LON-15", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ENM-22.1", body["api_version"])
	assert.Equal(t, -72, body["rsrp_dbm"])
	assert.Equal(t, 18, body["sinr_db"])

	_, body = a.Invoke(context.Background(), NativeGetKPIs, "DUB-07", nil)
	assert.Contains(t, body, "error")
}

func TestCiscoKPIs(t *testing.T) {
	a := NewCisco(fixedClock())

	status, body := a.Invoke(context.Background(), NativeGetKPIs, "PAR-03", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "DNA-Center-2.3", body["api_version"])
	assert.Equal(t, "REACHABLE", body["status"])
	assert.Equal(t, 45, body["cpu_percent"])
}

func TestUnknownNativeToolIsRejected(t *testing.T) {
	for _, a := range []Adapter{NewNokia(), NewEricsson(), NewCisco()} {
		status, body := a.Invoke(context.Background(), "reboot_everything", "DUB-07", nil)
		assert.Equal(t, http.StatusBadRequest, status, a.Vendor())
		assert.Equal(t, a.Vendor(), body["vendor"])
		assert.Contains(t, body["error"], "Unknown tool")
	}
}

func TestVendorNames(t *testing.T) {
	assert.Equal(t, "Nokia", NewNokia().Vendor())
	assert.Equal(t, "Ericsson", NewEricsson().Vendor())
	assert.Equal(t, "Cisco", NewCisco().Vendor())
}
