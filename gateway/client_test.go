package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contractx "github.com/aura-netops/aura/agent/contract"
)

func TestClientCallUnwrapsData(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/route", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(Response{
			Success: true,
			Vendor:  VendorNokia,
			SiteID:  "DUB-07",
			Tool:    "get_cell_kpis",
			Data:    map[string]any{"status": "HEALTHY"},
		})
	}))
	defer srv.Close()

	client, err := NewClient(ClientConfig{URL: srv.URL})
	require.NoError(t, err)

	data, err := client.Call(context.Background(), "get_cell_kpis", "DUB-07")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"status": "HEALTHY"}, data)
	assert.Equal(t, "get_cell_kpis", got.Tool)
	assert.Equal(t, "DUB-07", got.Target)
}

func TestClientCallGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"unknown site: NYC-01","available_sites":["DUB-07","LON-15","PAR-03"]}`))
	}))
	defer srv.Close()

	client, err := NewClient(ClientConfig{URL: srv.URL})
	require.NoError(t, err)

	_, err = client.Call(context.Background(), "get_cell_kpis", "NYC-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "unknown site")
}

func TestClientCallTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewClient(ClientConfig{URL: srv.URL})
	require.NoError(t, err)

	_, err = client.Call(context.Background(), "get_cell_kpis", "DUB-07")
	assert.ErrorIs(t, err, contractx.ErrTransport)
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	assert.ErrorIs(t, err, contractx.ErrValidation)
}
