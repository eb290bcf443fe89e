package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPublish(t *testing.T) {
	var got Event
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode event: %v", err)
		}
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, Token: "hook-token"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ev := Event{
		Kind:      "remediation",
		SessionID: "s1",
		Tool:      "initiate_ntn_failover",
		Target:    "DUB-07",
		Data:      map[string]any{"status": "SUCCESS"},
		Time:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	if err := client.Publish(context.Background(), ev); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if auth != "Bearer hook-token" {
		t.Fatalf("unexpected authorization header: %q", auth)
	}
	if got.Tool != ev.Tool || got.Target != ev.Target || got.Kind != ev.Kind {
		t.Fatalf("event mismatch: %+v", got)
	}
}

func TestPublishRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := client.Publish(context.Background(), Event{Kind: "remediation"}); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for missing url")
	}
	if _, err := NewClient(Config{URL: "::bad::"}); err == nil {
		t.Fatal("expected error for malformed url")
	}
}
