package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	contractx "github.com/aura-netops/aura/agent/contract"
)

type redisCommand []any

func newTestStore(t *testing.T, handler http.HandlerFunc, opts ...StoreOption) *UpstashRedisStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := NewUpstashRedisStore(UpstashRedisConfig{
		URL:     srv.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	}, opts...)
	if err != nil {
		t.Fatalf("NewUpstashRedisStore: %v", err)
	}
	return store
}

func decodeCommand(t *testing.T, r *http.Request) redisCommand {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("read command body: %v", err)
	}
	var cmd redisCommand
	if err := json.Unmarshal(raw, &cmd); err != nil {
		t.Fatalf("decode command %s: %v", raw, err)
	}
	return cmd
}

func TestUpstashStoreSaveSetsKeyAndTTL(t *testing.T) {
	var got redisCommand
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("unexpected authorization header: %q", auth)
		}
		got = decodeCommand(t, r)
		w.Write([]byte(`{"result":"OK"}`))
	})

	sess := New("s1", time.Now())
	sess.Append(contractx.Message{Role: contractx.RoleOperator, Content: "hello"})
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if len(got) != 5 {
		t.Fatalf("expected SET key payload EX ttl, got %v", got)
	}
	if got[0] != "SET" || got[1] != "aura:session:s1" || got[3] != "EX" {
		t.Fatalf("unexpected command shape: %v", got)
	}

	var stored Session
	if err := json.Unmarshal([]byte(got[2].(string)), &stored); err != nil {
		t.Fatalf("stored payload is not a session: %v", err)
	}
	if stored.ID != "s1" || len(stored.Messages) != 1 {
		t.Fatalf("stored session mismatch: %+v", stored)
	}
}

func TestUpstashStoreLoadRoundTrip(t *testing.T) {
	sess := New("s1", time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	sess.Append(contractx.Message{Role: contractx.RoleController, Content: "checking"})
	payload, err := json.Marshal(sess)
	if err != nil {
		t.Fatalf("marshal session: %v", err)
	}
	encoded, err := json.Marshal(string(payload))
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}

	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		cmd := decodeCommand(t, r)
		if cmd[0] != "GET" || cmd[1] != "aura:session:s1" {
			t.Errorf("unexpected command: %v", cmd)
		}
		w.Write([]byte(`{"result":` + string(encoded) + `}`))
	})

	loaded, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ID != "s1" || len(loaded.Messages) != 1 || loaded.Messages[0].Content != "checking" {
		t.Fatalf("loaded session mismatch: %+v", loaded)
	}
}

func TestUpstashStoreLoadMissing(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	})

	if _, err := store.Load(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpstashStoreSurfacesRedisErrors(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"WRONGTYPE operation"}`))
	})

	if _, err := store.Load(context.Background(), "s1"); err == nil {
		t.Fatal("expected redis error to surface")
	}
}

func TestUpstashStoreKeyPrefixOption(t *testing.T) {
	var got redisCommand
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		got = decodeCommand(t, r)
		w.Write([]byte(`{"result":1}`))
	}, WithKeyPrefix("custom:"))

	if err := store.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got[0] != "DEL" || got[1] != "custom:s1" {
		t.Fatalf("unexpected command: %v", got)
	}
}
