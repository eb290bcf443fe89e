package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/aura-netops/aura/gateway/adapterclient"
	"github.com/aura-netops/aura/pkg/metrics"
)

var (
	ErrMalformedRequest   = errors.New("malformed gateway request")
	ErrUnknownSite        = errors.New("unknown site")
	ErrUnconfiguredVendor = errors.New("no adapter configured for vendor")
)

// Request is the canonical gateway wire request.
type Request struct {
	Tool   string         `json:"tool"`
	Target string         `json:"target"`
	Params map[string]any `json:"params,omitempty"`
}

// Response is the normalized success envelope. Vendor and SiteID are always
// derived from the target through the registry, never taken from a caller.
type Response struct {
	Success bool           `json:"success"`
	Vendor  string         `json:"vendor"`
	SiteID  string         `json:"site_id"`
	Tool    string         `json:"tool"`
	Data    map[string]any `json:"data"`
}

// RouteError carries an HTTP-equivalent status plus, for adapter
// rejections, the vendor body to relay verbatim.
type RouteError struct {
	Status         int
	Err            error
	AvailableSites []string
	Body           map[string]any
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("route failed (status=%d): %v", e.Status, e.Err)
}

func (e *RouteError) Unwrap() error { return e.Err }

// Router resolves a request's target to a vendor through the registry and
// forwards it via the adapter client. It is a pure function of the request
// and the registry snapshot; adding a vendor touches only the registry.
type Router struct {
	registry *Registry
	adapters adapterclient.Client
}

func NewRouter(registry *Registry, adapters adapterclient.Client) (*Router, error) {
	if registry == nil {
		return nil, errors.New("registry is required")
	}
	if adapters == nil {
		return nil, errors.New("adapter client is required")
	}
	return &Router{registry: registry, adapters: adapters}, nil
}

func (rt *Router) Route(ctx context.Context, req Request) (Response, error) {
	tool := strings.TrimSpace(req.Tool)
	target := strings.TrimSpace(req.Target)
	if tool == "" || target == "" {
		return Response{}, &RouteError{
			Status: http.StatusBadRequest,
			Err:    fmt.Errorf("%w: missing required fields: tool and target", ErrMalformedRequest),
		}
	}

	siteID := ExtractSiteID(target)
	vendor, ok := rt.registry.VendorForSite(siteID)
	if !ok {
		metrics.GatewayRequests.WithLabelValues("unknown", "unknown_site").Inc()
		return Response{}, &RouteError{
			Status:         http.StatusNotFound,
			Err:            fmt.Errorf("%w: %s", ErrUnknownSite, siteID),
			AvailableSites: rt.registry.Sites(),
		}
	}

	endpoint, ok := rt.registry.EndpointForVendor(vendor)
	if !ok {
		metrics.GatewayRequests.WithLabelValues(vendor, "unconfigured").Inc()
		return Response{}, &RouteError{
			Status: http.StatusInternalServerError,
			Err:    fmt.Errorf("%w: %s", ErrUnconfiguredVendor, vendor),
		}
	}

	vendorTool := rt.registry.VendorTool(tool)
	log.Info().
		Str("vendor", vendor).
		Str("site_id", siteID).
		Str("tool", tool).
		Str("vendor_tool", vendorTool).
		Str("endpoint", endpoint).
		Msg("routing to vendor adapter")

	status, body, err := rt.adapters.Invoke(ctx, endpoint, vendorTool, target, req.Params)
	if err != nil {
		metrics.GatewayRequests.WithLabelValues(vendor, "transport_error").Inc()
		return Response{}, &RouteError{
			Status: http.StatusInternalServerError,
			Err:    fmt.Errorf("adapter invocation for vendor %s: %w", vendor, err),
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		// The router relays adapter rejections untouched; masking them
		// would hide which layer said no.
		metrics.GatewayRequests.WithLabelValues(vendor, "adapter_error").Inc()
		return Response{}, &RouteError{
			Status: status,
			Err:    fmt.Errorf("adapter for vendor %s rejected request (status=%d)", vendor, status),
			Body:   body,
		}
	}

	metrics.GatewayRequests.WithLabelValues(vendor, "success").Inc()
	return Response{
		Success: true,
		Vendor:  vendor,
		SiteID:  siteID,
		Tool:    tool,
		Data:    body,
	}, nil
}
