package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestComplete(t *testing.T) {
	t.Run("sends_messages_and_returns_content", func(t *testing.T) {
		var gotAuth string
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			gotAuth = r.Header.Get("Authorization")

			var req chatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
				t.Errorf("unexpected messages: %+v", req.Messages)
			}
			if req.Model != "test-model" {
				t.Errorf("expected model test-model, got %s", req.Model)
			}

			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"role": "assistant", "content": `{"ok":true}`}},
				},
			})
		})

		client := NewClient(srv.URL, "test-key", "test-model", 5*time.Second)
		reply, err := client.Complete(context.Background(), "system prompt", "user text")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != `{"ok":true}` {
			t.Errorf("unexpected reply %q", reply)
		}
		if gotAuth != "Bearer test-key" {
			t.Errorf("expected bearer auth header, got %q", gotAuth)
		}
	})

	t.Run("non_200_is_an_error", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model overloaded", http.StatusServiceUnavailable)
		})

		client := NewClient(srv.URL, "", "test-model", 5*time.Second)
		_, err := client.Complete(context.Background(), "system", "user")
		if err == nil {
			t.Fatal("expected error for 503 response")
		}
		if !strings.Contains(err.Error(), "503") {
			t.Errorf("expected status in error, got %v", err)
		}
	})

	t.Run("empty_choices_is_an_error", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})

		client := NewClient(srv.URL, "", "test-model", 5*time.Second)
		_, err := client.Complete(context.Background(), "system", "user")
		if err == nil {
			t.Fatal("expected error for empty choices")
		}
	})

	t.Run("breaker_opens_after_consecutive_failures", func(t *testing.T) {
		var calls int
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			http.Error(w, "down", http.StatusInternalServerError)
		})

		client := NewClient(srv.URL, "", "test-model", 5*time.Second)
		for i := 0; i < 5; i++ {
			_, _ = client.Complete(context.Background(), "system", "user")
		}

		// After three consecutive failures the breaker stops sending requests.
		if calls != 3 {
			t.Errorf("expected 3 upstream calls before the breaker opened, got %d", calls)
		}
	})
}
