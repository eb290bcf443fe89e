package loop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/aura-netops/aura/agent/contract"
	"github.com/aura-netops/aura/agent/parse"
	"github.com/aura-netops/aura/agent/prompt"
	sessionx "github.com/aura-netops/aura/agent/session"
	"github.com/aura-netops/aura/pkg/audit"
	"github.com/aura-netops/aura/pkg/metrics"
	"github.com/aura-netops/aura/pkg/notify"
)

const cappedReply = "Maximum tool iterations reached for this turn. " +
	"Summarize findings so far or narrow the request."

type turnState struct {
	SessionID string
	Text      string
	Cap       int

	Session *sessionx.Session

	Reply  string
	Capped bool
}

func (s *Service) validateRequest(in TurnInput) (*turnState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", contractx.ErrValidation)
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is required", contractx.ErrValidation)
	}

	limit := in.MaxIterations
	if limit <= 0 {
		limit = s.cfg.MaxIterations
	}

	return &turnState{SessionID: sessionID, Text: text, Cap: limit}, nil
}

func (s *Service) loadOrCreateSession(ctx context.Context, st *turnState) (*turnState, error) {
	sess, err := s.store.Load(ctx, st.SessionID)
	if err != nil {
		if !errors.Is(err, sessionx.ErrNotFound) {
			return nil, fmt.Errorf("load session %s: %w", st.SessionID, err)
		}
		sess = sessionx.New(st.SessionID, s.now())
	}
	st.Session = sess
	return st, nil
}

// runReasoning is the core cycle: ask the model, act on at most one
// directive per reply, fold the result back, repeat until the model answers
// in plain text or the dispatch cap is hit. A model failure aborts the turn
// before anything is saved, so the stored session is untouched.
func (s *Service) runReasoning(ctx context.Context, st *turnState) (*turnState, error) {
	metrics.Interactions.Inc()

	sess := st.Session
	sess.Append(contractx.Message{Role: contractx.RoleOperator, Content: st.Text})
	s.record(ctx, audit.Record{
		SessionID: sess.ID,
		Kind:      audit.KindTurn,
		Detail:    truncate(st.Text, 200),
	})

	system := prompt.System() + "\n\n" + s.tools.CatalogPrompt()

	for iteration := 0; iteration < st.Cap; iteration++ {
		reply, err := s.generateWithRetry(ctx, system, sess.Messages)
		if err != nil {
			return nil, err
		}

		call, ok := parse.Directive(reply)
		if !ok {
			sess.Append(contractx.Message{Role: contractx.RoleController, Content: reply})
			st.Reply = reply
			return st, nil
		}

		log.Debug().
			Str("session_id", sess.ID).
			Str("tool", call.Name).
			Str("param", call.RawParam).
			Int("iteration", iteration).
			Msg("executing tool directive")

		result := s.dispatch(ctx, sess, call)
		sess.Append(
			contractx.Message{Role: contractx.RoleController, Content: reply},
			contractx.Message{Role: contractx.RoleOperator, Content: foldResult(call, result)},
		)
	}

	st.Reply = cappedReply
	st.Capped = true
	return st, nil
}

func (s *Service) saveSession(ctx context.Context, st *turnState) (*turnState, error) {
	st.Session.Touch(s.now())
	if err := s.store.Save(ctx, st.Session); err != nil {
		return nil, fmt.Errorf("save session %s: %w", st.SessionID, err)
	}
	return st, nil
}

func finalizeReply(st *turnState) (TurnOutput, error) {
	return TurnOutput{Reply: st.Reply, IterationCapped: st.Capped}, nil
}

// dispatch resolves and runs one directive. Failures come back as a
// ToolResult rather than an error: the model sees what went wrong and can
// self-correct on the next iteration.
func (s *Service) dispatch(ctx context.Context, sess *sessionx.Session, call contractx.ToolCall) contractx.ToolResult {
	desc, ok := s.tools.Lookup(call.Name)
	if !ok {
		metrics.ToolCalls.WithLabelValues(call.Name, "unknown").Inc()
		return contractx.FailedToolResult(fmt.Sprintf(
			"unknown tool %q; available tools: %s",
			call.Name, strings.Join(s.tools.Names(), ", ")))
	}

	if desc.SideEffecting && !sess.Consume(call.Name, call.RawParam) {
		metrics.ToolCalls.WithLabelValues(call.Name, "approval_required").Inc()
		s.record(ctx, audit.Record{
			SessionID: sess.ID,
			Kind:      audit.KindToolExecution,
			Tool:      call.Name,
			Target:    call.RawParam,
			Detail:    "blocked: no operator approval on record",
		})
		return contractx.FailedToolResult(fmt.Sprintf(
			"approval required: %s is service-impacting and no operator approval is on record for target %s; "+
				"ask the operator to approve and do not retry until they confirm",
			call.Name, call.RawParam))
	}

	out, err := desc.Run(ctx, call.RawParam)
	if err != nil {
		execErr := fmt.Errorf("%w: %s: %v", contractx.ErrToolExecution, call.Name, err)
		log.Warn().Err(execErr).Str("session_id", sess.ID).Msg("tool dispatch failed")
		metrics.ToolCalls.WithLabelValues(call.Name, "error").Inc()
		s.record(ctx, audit.Record{
			SessionID: sess.ID,
			Kind:      audit.KindToolExecution,
			Tool:      call.Name,
			Target:    call.RawParam,
			Detail:    "failed: " + err.Error(),
		})
		return contractx.FailedToolResult(execErr.Error())
	}

	metrics.ToolCalls.WithLabelValues(call.Name, "success").Inc()
	s.record(ctx, audit.Record{
		SessionID: sess.ID,
		Kind:      audit.KindToolExecution,
		Tool:      call.Name,
		Target:    call.RawParam,
		Detail:    "ok",
	})

	if desc.SideEffecting {
		metrics.RemediationsExecuted.Inc()
		s.record(ctx, audit.Record{
			SessionID: sess.ID,
			Kind:      audit.KindRemediation,
			Tool:      call.Name,
			Target:    call.RawParam,
			Detail:    truncate(compactJSON(out), 200),
		})
		if err := s.notifier.Publish(ctx, notify.Event{
			Kind:      audit.KindRemediation,
			SessionID: sess.ID,
			Tool:      call.Name,
			Target:    call.RawParam,
			Data:      out,
			Time:      s.now(),
		}); err != nil {
			log.Warn().Err(err).Str("tool", call.Name).Msg("remediation notification failed")
		}
	}

	return contractx.ToolResult{Success: true, Result: out}
}

// generateWithRetry calls the model, retrying only rate-limit failures with
// exponential backoff. Service and transport failures surface immediately.
func (s *Service) generateWithRetry(ctx context.Context, system string, msgs []contractx.Message) (string, error) {
	var lastErr error
	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.cfg.RetryBaseDelay * (1 << (attempt - 1))
			metrics.ModelRetries.Inc()
			log.Warn().Dur("delay", delay).Int("attempt", attempt).Msg("rate limited, backing off")
			if err := s.sleep(ctx, delay); err != nil {
				return "", err
			}
		}

		reply, err := s.gen.Generate(ctx, system, msgs)
		if err == nil {
			return reply, nil
		}
		if !errors.Is(err, contractx.ErrRateLimited) {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("model unavailable after %d attempts: %w", s.cfg.MaxRetries, lastErr)
}

func (s *Service) record(ctx context.Context, rec audit.Record) {
	if rec.Time.IsZero() {
		rec.Time = s.now()
	}
	if err := s.recorder.Record(ctx, rec); err != nil {
		log.Warn().Err(err).Str("kind", rec.Kind).Msg("audit record failed")
	}
}

// foldResult renders a tool outcome as the operator-role message the model
// reads on the next iteration.
func foldResult(call contractx.ToolCall, res contractx.ToolResult) string {
	var payload any
	if res.Success {
		payload = res.Result
	} else {
		payload = map[string]any{"error": res.Error}
	}

	rendered, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		rendered = []byte(fmt.Sprintf("%v", payload))
	}
	return fmt.Sprintf("Tool result from %s(%s):\n%s", call.Name, call.RawParam, rendered)
}

func compactJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
