package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChat(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "hello"}}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	resp, err := client.Chat(context.Background(), "gpt-4", "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	reply, ok := resp.Reply()
	if !ok {
		t.Fatal("expected a valid reply")
	}
	if reply != "hello" {
		t.Errorf("reply = %q, want %q", reply, "hello")
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want %q", gotContentType, "application/json")
	}
	if gotBody["model"] != "gpt-4" {
		t.Errorf("model = %v, want gpt-4", gotBody["model"])
	}
	messages, ok := gotBody["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", gotBody["messages"])
	}
	first := messages[0].(map[string]any)
	second := messages[1].(map[string]any)
	if first["role"] != "system" || first["content"] != "system prompt" {
		t.Errorf("unexpected system message: %v", first)
	}
	if second["role"] != "user" || second["content"] != "user prompt" {
		t.Errorf("unexpected user message: %v", second)
	}
}

func TestChatErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid api key"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "bad-key")
	_, err := client.Chat(context.Background(), "gpt-4", "s", "u")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a *StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", statusErr.Code, http.StatusUnauthorized)
	}
	if statusErr.Body != `{"error": "invalid api key"}` {
		t.Errorf("body = %q", statusErr.Body)
	}
}

func TestChatTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client := New(srv.URL, "secret")
	_, err := client.Chat(context.Background(), "gpt-4", "s", "u")
	if err == nil {
		t.Fatal("expected a transport error, got nil")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("transport failures must not be status errors: %v", err)
	}
}

func TestReplyMissingChoices(t *testing.T) {
	var resp Response
	if err := json.Unmarshal([]byte(`{"id": "x"}`), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := resp.Reply(); ok {
		t.Error("a response without choices must not yield a reply")
	}
}
