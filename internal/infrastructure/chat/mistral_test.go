package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *MistralClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewMistralClient(Config{
		APIKey:     "test-key",
		Model:      "mistral-medium",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	return srv, client
}

func TestMistralClient_Complete(t *testing.T) {
	var gotAuth string
	var gotReq completionRequest

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hello!"}},
			},
		})
	})

	reply, err := client.Complete(context.Background(), "hi")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if reply != "hello!" {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotReq.Model != "mistral-medium" {
		t.Fatalf("unexpected model: %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" || gotReq.Messages[0].Content != "hi" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestMistralClient_Complete_EmptyChoices(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	reply, err := client.Complete(context.Background(), "hi")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if reply != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func TestMistralClient_Complete_UpstreamError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	})

	if _, err := client.Complete(context.Background(), "hi"); err == nil {
		t.Fatalf("expected error for upstream 503")
	}
}

func TestMistralClient_Complete_MissingKey(t *testing.T) {
	client := NewMistralClient(Config{})

	if _, err := client.Complete(context.Background(), "hi"); err != domain.ErrProviderNotConfigured {
		t.Fatalf("expected ErrProviderNotConfigured, got %v", err)
	}
}
