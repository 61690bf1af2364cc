package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zeus-ai-be/pkg/llm"
)

func stubServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestGenerateSendsMessagesRequest(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotBody map[string]interface{}

	server := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"text": "hello from the model"}},
		})
	})

	p := NewAnthropicProvider("test-key", "claude-sonnet-4-20250514", time.Second).WithBaseURL(server.URL)

	got, err := p.Generate(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "hello from the model" {
		t.Errorf("response = %q", got)
	}
	if gotPath != "/v1/messages" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" || gotVersion != "2023-06-01" {
		t.Errorf("headers = key %q, version %q", gotKey, gotVersion)
	}
	if gotBody["model"] != "claude-sonnet-4-20250514" {
		t.Errorf("model = %v", gotBody["model"])
	}
	msgs, ok := gotBody["messages"].([]interface{})
	if !ok || len(msgs) != 1 {
		t.Fatalf("messages = %v", gotBody["messages"])
	}
}

func TestChatMapsModelRoleToAssistant(t *testing.T) {
	var gotBody struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
	}

	server := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"text": "ok"}},
		})
	})

	p := NewAnthropicProvider("k", "m", time.Second).WithBaseURL(server.URL)

	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hi"},
		{Role: "model", Content: "earlier reply"},
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if len(gotBody.Messages) != 2 {
		t.Fatalf("got %d messages", len(gotBody.Messages))
	}
	if gotBody.Messages[1].Role != "assistant" {
		t.Errorf("role = %q, want assistant", gotBody.Messages[1].Role)
	}
}

func TestChatNonOKStatusIsError(t *testing.T) {
	server := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	})

	p := NewAnthropicProvider("k", "m", time.Second).WithBaseURL(server.URL)

	if _, err := p.Generate(context.Background(), "hi"); err == nil {
		t.Fatal("want error on 503")
	}
}

func TestChatEmptyContentIsError(t *testing.T) {
	server := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"content": []interface{}{}})
	})

	p := NewAnthropicProvider("k", "m", time.Second).WithBaseURL(server.URL)

	if _, err := p.Generate(context.Background(), "hi"); err == nil {
		t.Fatal("want error on empty content")
	}
}
