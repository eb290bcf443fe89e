package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/aura-netops/aura/agent/loop"
	sessionx "github.com/aura-netops/aura/agent/session"
	toolx "github.com/aura-netops/aura/agent/tool"
	"github.com/aura-netops/aura/gateway"
	"github.com/aura-netops/aura/pkg/audit"
	configx "github.com/aura-netops/aura/pkg/config"
	"github.com/aura-netops/aura/pkg/notify"
	"github.com/aura-netops/aura/pkg/openrouter"
)

// newAgentService assembles the reasoning loop from environment
// configuration: OpenRouter model client, tool backend (gateway when
// GATEWAY_URL is set, local fixtures otherwise), session store (Upstash when
// configured, in-memory otherwise), audit log, and optional webhook
// notifier. The returned cleanup closes what was opened.
func newAgentService(ctx context.Context) (*loop.Service, func(), error) {
	cleanup := func() {}

	genCfg, err := configx.New[openrouter.Config]("OPENROUTER")
	if err != nil {
		return nil, cleanup, fmt.Errorf("openrouter config (set OPENROUTER_API_KEY and OPENROUTER_MODEL): %w", err)
	}
	gen, err := openrouter.NewGenerator(*genCfg)
	if err != nil {
		return nil, cleanup, err
	}

	backend, err := newToolBackend()
	if err != nil {
		return nil, cleanup, err
	}
	registry, err := toolx.NewRegistry(toolx.Catalog(backend)...)
	if err != nil {
		return nil, cleanup, err
	}

	store := newSessionStore()

	opts := []loop.Option{}

	auditCfg := configx.MustNew[audit.Config]("AUDIT")
	auditStore, err := audit.Open(ctx, auditCfg.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", auditCfg.Path).Msg("operations log unavailable, auditing disabled")
	} else {
		opts = append(opts, loop.WithRecorder(auditStore))
		cleanup = func() {
			if err := auditStore.Close(); err != nil {
				log.Warn().Err(err).Msg("closing operations log")
			}
		}
	}

	if notifyCfg, err := configx.New[notify.Config]("NOTIFY"); err == nil && notifyCfg.URL != "" {
		publisher, err := notify.NewClient(*notifyCfg)
		if err != nil {
			return nil, cleanup, err
		}
		opts = append(opts, loop.WithNotifier(publisher))
	}

	loopCfg := configx.MustNew[loop.Config]("AGENT")
	svc, err := loop.New(gen, registry, store, *loopCfg, opts...)
	if err != nil {
		return nil, cleanup, err
	}
	return svc, cleanup, nil
}

func newToolBackend() (toolx.Backend, error) {
	gwCfg := configx.MustNew[gateway.ClientConfig]("GATEWAY")
	if gwCfg.URL == "" {
		log.Info().Msg("GATEWAY_URL not set, using local fixture telemetry")
		return toolx.LocalBackend{}, nil
	}
	client, err := gateway.NewClient(*gwCfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", gwCfg.URL).Msg("routing tool calls through gateway")
	return client, nil
}

func newSessionStore() sessionx.Store {
	cfg, err := configx.New[sessionx.UpstashRedisConfig]("UPSTASH_REDIS")
	if err != nil {
		log.Debug().Msg("upstash not configured, sessions held in memory")
		return sessionx.NewMemoryStore()
	}
	store, err := sessionx.NewUpstashRedisStore(*cfg)
	if err != nil {
		log.Warn().Err(err).Msg("upstash store rejected config, sessions held in memory")
		return sessionx.NewMemoryStore()
	}
	log.Info().Msg("sessions persisted to upstash redis")
	return store
}
