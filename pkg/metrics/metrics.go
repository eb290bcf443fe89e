// Package metrics exposes the operational counters for the agent and the
// gateway. All collectors are registered on the default registry; the
// gateway server serves them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Interactions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aura",
		Name:      "interactions_total",
		Help:      "Operator turns processed by the reasoning loop.",
	})

	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aura",
		Name:      "tool_calls_total",
		Help:      "Tool dispatches by tool name and outcome.",
	}, []string{"tool", "outcome"})

	ApprovalsGranted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aura",
		Name:      "approvals_granted_total",
		Help:      "Explicit operator approvals recorded for side-effecting tools.",
	})

	RemediationsExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aura",
		Name:      "remediations_executed_total",
		Help:      "Side-effecting tool executions that completed successfully.",
	})

	ModelRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aura",
		Name:      "model_retries_total",
		Help:      "Model calls retried after rate limiting.",
	})

	GatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aura",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Gateway route requests by vendor and outcome.",
	}, []string{"vendor", "outcome"})
)
