// Package loop drives the agent's reasoning cycle: model call, directive
// parse, gated tool dispatch, result fold-back, bounded iteration.
package loop

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/aura-netops/aura/agent/contract"
	sessionx "github.com/aura-netops/aura/agent/session"
	toolx "github.com/aura-netops/aura/agent/tool"
	"github.com/aura-netops/aura/pkg/audit"
	"github.com/aura-netops/aura/pkg/metrics"
	"github.com/aura-netops/aura/pkg/notify"
)

type Config struct {
	// MaxIterations bounds tool dispatches within one operator turn.
	MaxIterations int `envconfig:"MAX_ITERATIONS" split_words:"true" default:"5"`

	// MaxRetries bounds model-call attempts when the service rate limits.
	MaxRetries int `envconfig:"MAX_RETRIES" split_words:"true" default:"3"`

	// RetryBaseDelay is doubled on each successive retry.
	RetryBaseDelay time.Duration `envconfig:"RETRY_BASE_DELAY" split_words:"true" default:"2s"`
}

func (c Config) normalized() Config {
	if c.MaxIterations <= 0 {
		c.MaxIterations = 5
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = 2 * time.Second
	}
	return c
}

// TurnInput is one operator message plus an optional per-turn iteration cap
// override (0 uses the configured default).
type TurnInput struct {
	SessionID     string
	Text          string
	MaxIterations int
}

// TurnOutput carries the terminal reply for a turn. IterationCapped marks
// the advisory reply produced when the dispatch bound was hit.
type TurnOutput struct {
	Reply           string
	IterationCapped bool
}

type sleepFunc func(ctx context.Context, d time.Duration) error

// Service is the reasoning loop over one conversation store. Sessions are
// processed strictly sequentially per session ID; distinct sessions may run
// in parallel since all shared state is read-only.
type Service struct {
	gen      contractx.Generator
	tools    *toolx.Registry
	store    sessionx.Store
	recorder audit.Recorder
	notifier notify.Publisher
	cfg      Config

	runner compose.Runnable[TurnInput, TurnOutput]

	now   func() time.Time
	sleep sleepFunc
}

type Option func(*Service)

func WithRecorder(r audit.Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithNotifier(p notify.Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.notifier = p
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSleep replaces the backoff sleeper. Tests use it to observe delays
// without waiting them out.
func WithSleep(fn sleepFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.sleep = fn
		}
	}
}

func New(gen contractx.Generator, tools *toolx.Registry, store sessionx.Store, cfg Config, opts ...Option) (*Service, error) {
	if gen == nil {
		return nil, errors.New("generator is required")
	}
	if tools == nil {
		return nil, errors.New("tool registry is required")
	}
	if store == nil {
		return nil, errors.New("session store is required")
	}

	s := &Service{
		gen:      gen,
		tools:    tools,
		store:    store,
		recorder: audit.NopRecorder{},
		notifier: notify.Nop{},
		cfg:      cfg.normalized(),
		now:      time.Now,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	runner, err := s.compileTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	s.runner = runner

	return s, nil
}

// HandleMessage processes one operator message and returns the terminal
// reply. An iteration-capped turn returns the advisory reply together with
// contract.ErrIterationLimit so callers can distinguish it.
func (s *Service) HandleMessage(ctx context.Context, sessionID, text string) (string, error) {
	return s.HandleTurn(ctx, TurnInput{SessionID: sessionID, Text: text})
}

func (s *Service) HandleTurn(ctx context.Context, in TurnInput) (string, error) {
	out, err := s.runner.Invoke(ctx, in)
	if err != nil {
		return "", err
	}
	if out.IterationCapped {
		return out.Reply, contractx.ErrIterationLimit
	}
	return out.Reply, nil
}

// Approve records a single-use operator approval for a side-effecting tool
// against a target. Grants survive in session state until consumed or reset.
func (s *Service) Approve(ctx context.Context, sessionID, toolName, target string) (sessionx.Approval, error) {
	desc, ok := s.tools.Lookup(toolName)
	if !ok {
		return sessionx.Approval{}, contractx.ErrUnknownTool
	}
	if !desc.SideEffecting {
		return sessionx.Approval{}, errors.New("tool does not require approval: " + toolName)
	}

	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, sessionx.ErrNotFound) {
			return sessionx.Approval{}, err
		}
		sess = sessionx.New(sessionID, s.now())
	}

	approval := sess.Grant(toolName, target, s.now())
	sess.Touch(s.now())
	if err := s.store.Save(ctx, sess); err != nil {
		return sessionx.Approval{}, err
	}

	metrics.ApprovalsGranted.Inc()
	s.record(ctx, audit.Record{
		SessionID: sessionID,
		Kind:      audit.KindApproval,
		Tool:      toolName,
		Target:    target,
		Detail:    "operator approval granted (token " + approval.Token + ")",
	})
	return approval, nil
}

// Reset clears a session's conversation and outstanding approvals.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionx.ErrNotFound) {
			return nil
		}
		return err
	}
	sess.Reset()
	sess.Touch(s.now())
	return s.store.Save(ctx, sess)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
