package adapterclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientInvoke(t *testing.T) {
	var got invokeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"vendor":"Nokia","status":"HEALTHY"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(2 * time.Second)
	status, body, err := client.Invoke(context.Background(), srv.URL, "get_kpis", "DUB-07", map[string]any{"detail": "full"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Nokia", body["vendor"])
	assert.Equal(t, "get_kpis", got.Tool)
	assert.Equal(t, "DUB-07", got.Target)
	assert.Equal(t, map[string]any{"detail": "full"}, got.Params)
}

func TestHTTPClientRelaysAdapterStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Unknown tool: reboot","vendor":"Nokia"}`))
	}))
	defer srv.Close()

	status, body, err := NewHTTPClient(0).Invoke(context.Background(), srv.URL, "reboot", "DUB-07", nil)
	require.NoError(t, err, "an adapter rejection is a status, not a transport error")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Unknown tool: reboot", body["error"])
}

func TestHTTPClientNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text panic page"))
	}))
	defer srv.Close()

	status, body, err := NewHTTPClient(0).Invoke(context.Background(), srv.URL, "get_kpis", "DUB-07", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "plain text panic page", body["raw"])
}

func TestHTTPClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, _, err := NewHTTPClient(time.Second).Invoke(context.Background(), srv.URL, "get_kpis", "DUB-07", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestHTTPClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	_, _, err := NewHTTPClient(50 * time.Millisecond).Invoke(context.Background(), srv.URL, "get_kpis", "DUB-07", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestLocalDispatch(t *testing.T) {
	local := NewLocalDefault()

	status, body, err := local.Invoke(context.Background(), LocalNokiaEndpoint, "get_kpis", "DUB-07", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Nokia", body["vendor"])

	_, _, err = local.Invoke(context.Background(), "local://huawei", "get_kpis", "DUB-07", nil)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestLocalEndpointsMatchDefaultSet(t *testing.T) {
	local := NewLocalDefault()
	for vendor, endpoint := range LocalEndpoints() {
		status, body, err := local.Invoke(context.Background(), endpoint, "get_kpis", "probe", nil)
		require.NoError(t, err, vendor)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, vendor, body["vendor"])
	}
}
