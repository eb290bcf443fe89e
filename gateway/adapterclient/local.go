package adapterclient

import (
	"context"
	"fmt"

	"github.com/aura-netops/aura/gateway/adapters"
)

// Local endpoint scheme used by single-binary deployments where the
// adapters run in-process instead of behind HTTP.
const (
	LocalNokiaEndpoint    = "local://nokia"
	LocalEricssonEndpoint = "local://ericsson"
	LocalCiscoEndpoint    = "local://cisco"
)

// Local dispatches adapter invocations in-process. It honors the same
// contract as HTTPClient: adapter rejections are statuses, a missing
// endpoint is a transport failure.
type Local struct {
	byEndpoint map[string]adapters.Adapter
}

func NewLocal(byEndpoint map[string]adapters.Adapter) *Local {
	cp := make(map[string]adapters.Adapter, len(byEndpoint))
	for endpoint, adapter := range byEndpoint {
		cp[endpoint] = adapter
	}
	return &Local{byEndpoint: cp}
}

// NewLocalDefault wires the three standard vendor adapters under the
// local:// endpoints.
func NewLocalDefault(opts ...adapters.Option) *Local {
	return NewLocal(map[string]adapters.Adapter{
		LocalNokiaEndpoint:    adapters.NewNokia(opts...),
		LocalEricssonEndpoint: adapters.NewEricsson(opts...),
		LocalCiscoEndpoint:    adapters.NewCisco(opts...),
	})
}

// LocalEndpoints returns the endpoint set matching NewLocalDefault.
func LocalEndpoints() map[string]string {
	return map[string]string{
		"Nokia":    LocalNokiaEndpoint,
		"Ericsson": LocalEricssonEndpoint,
		"Cisco":    LocalCiscoEndpoint,
	}
}

func (l *Local) Invoke(ctx context.Context, endpoint, tool, target string, params map[string]any) (int, map[string]any, error) {
	adapter, ok := l.byEndpoint[endpoint]
	if !ok {
		return 0, nil, fmt.Errorf("%w: no in-process adapter at %s", ErrUnreachable, endpoint)
	}
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	status, body := adapter.Invoke(ctx, tool, target, params)
	return status, body, nil
}
