package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/aura-netops/aura/agent/contract"
)

func TestConfigValidate(t *testing.T) {
	err := Config{Model: "m"}.Validate()
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing api key, got %v", err)
	}
	err = Config{APIKey: "k"}.Validate()
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing model, got %v", err)
	}
	if err := (Config{APIKey: "k", Model: "m"}).Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestGenerateMapsRoles(t *testing.T) {
	var payload struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","choices":[{"index":0,"message":{"role":"assistant","content":"All nominal."}}]}`))
	}))
	defer srv.Close()

	gen, err := NewGenerator(Config{APIKey: "test", Model: "test-model", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	reply, err := gen.Generate(context.Background(), "system prompt", []contractx.Message{
		{Role: contractx.RoleOperator, Content: "status?"},
		{Role: contractx.RoleController, Content: "checking"},
		{Role: contractx.RoleOperator, Content: "Tool result from get_cell_kpis(DUB-07):\n{}"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if reply != "All nominal." {
		t.Fatalf("unexpected reply: %q", reply)
	}

	if payload.Model != "test-model" {
		t.Fatalf("model=%q", payload.Model)
	}
	wantRoles := []string{"system", "user", "assistant", "user"}
	if len(payload.Messages) != len(wantRoles) {
		t.Fatalf("expected %d messages, got %d", len(wantRoles), len(payload.Messages))
	}
	for i, role := range wantRoles {
		if payload.Messages[i].Role != role {
			t.Fatalf("message %d role=%q, want %q", i, payload.Messages[i].Role, role)
		}
	}
	if payload.Messages[0].Content != "system prompt" {
		t.Fatalf("system content=%q", payload.Messages[0].Content)
	}
}

func TestClassify(t *testing.T) {
	if err := classify(&openaisdk.Error{StatusCode: http.StatusTooManyRequests}); !errors.Is(err, contractx.ErrRateLimited) {
		t.Fatalf("429 should classify as rate limited, got %v", err)
	}
	if err := classify(&openaisdk.Error{StatusCode: http.StatusInternalServerError}); !errors.Is(err, contractx.ErrService) {
		t.Fatalf("500 should classify as service error, got %v", err)
	}
	if err := classify(errors.New("dial tcp: connection refused")); !errors.Is(err, contractx.ErrTransport) {
		t.Fatalf("non-API errors should classify as transport, got %v", err)
	}
}
