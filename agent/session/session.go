package session

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	contractx "github.com/aura-netops/aura/agent/contract"
)

// Session is the durable state of one operator conversation. Messages are
// append-only and strictly chronological; the only way to discard history is
// Reset. Approvals are the programmatic gate in front of service-impacting
// tools: a side-effecting dispatch must consume a matching grant, regardless
// of what the controller emits.
type Session struct {
	ID        string             `json:"id"`
	Messages  []contractx.Message `json:"messages,omitempty"`
	Approvals []Approval         `json:"approvals,omitempty"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Approval is a single-use permission to run one side-effecting tool against
// one target. The target is stored hashed so a grant for DUB-07 cannot be
// replayed against another site.
type Approval struct {
	Token      string    `json:"token"`
	Tool       string    `json:"tool"`
	TargetHash string    `json:"target_hash"`
	GrantedAt  time.Time `json:"granted_at"`
}

func New(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		UpdatedAt: now.UTC(),
	}
}

// Append adds messages in order. Callers append a controller reply and the
// tool result that answers it in one call so a cancelled turn never leaves a
// half-recorded dispatch.
func (s *Session) Append(msgs ...contractx.Message) {
	s.Messages = append(s.Messages, msgs...)
}

// Reset drops all conversation history and outstanding approvals.
func (s *Session) Reset() {
	s.Messages = nil
	s.Approvals = nil
}

func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

// Grant records an approval for tool against target and returns it.
func (s *Session) Grant(tool, target string, now time.Time) Approval {
	a := Approval{
		Token:      uuid.NewString(),
		Tool:       strings.TrimSpace(tool),
		TargetHash: HashTarget(target),
		GrantedAt:  now.UTC(),
	}
	s.Approvals = append(s.Approvals, a)
	return a
}

// Consume removes and reports a grant matching tool and target. Grants are
// single use: a second dispatch needs a second explicit approval.
func (s *Session) Consume(tool, target string) bool {
	want := HashTarget(target)
	for i, a := range s.Approvals {
		if a.Tool == tool && a.TargetHash == want {
			s.Approvals = append(s.Approvals[:i], s.Approvals[i+1:]...)
			return true
		}
	}
	return false
}

// HashTarget returns a short stable digest of a target identifier.
func HashTarget(target string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(target)))
	return hex.EncodeToString(sum[:])[:16]
}

// Clone returns a deep copy so stores can hand out snapshots without
// exposing their internals to caller mutation.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Messages = append([]contractx.Message(nil), s.Messages...)
	cp.Approvals = append([]Approval(nil), s.Approvals...)
	return &cp
}
