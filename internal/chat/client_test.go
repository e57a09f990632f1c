package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAskParsesCompletionResponse(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string
	var gotPayload struct {
		Model    string    `json:"model"`
		Messages []Message `json:"messages"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode request payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "choices": [
    {"message": {"role": "assistant", "content": "  Cramps in the luteal phase are common.  "}}
  ]
}`))
	}))
	defer ts.Close()

	c := &Client{
		BaseURL:    ts.URL,
		APIKey:     "demo",
		HTTPClient: ts.Client(),
	}

	history := []Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	answer, err := c.Ask(context.Background(), history, "why do I get cramps?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answer != "Cramps in the luteal phase are common." {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if gotPath != "/v1/chat/completions" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotAuth != "Bearer demo" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotPayload.Model != defaultModel {
		t.Fatalf("expected default model, got %q", gotPayload.Model)
	}
	if len(gotPayload.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(gotPayload.Messages))
	}
	if gotPayload.Messages[0].Role != "system" {
		t.Fatalf("expected system prompt first, got role %q", gotPayload.Messages[0].Role)
	}
	if gotPayload.Messages[3].Content != "why do I get cramps?" {
		t.Fatalf("expected question last, got %q", gotPayload.Messages[3].Content)
	}
}

func TestAskRejectsUpstreamErrors(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, APIKey: "demo", HTTPClient: ts.Client()}
	if _, err := c.Ask(context.Background(), nil, "hello"); err == nil {
		t.Fatal("expected error for upstream failure")
	} else if !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAskValidatesConfiguration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		client   Client
		question string
	}{
		{"missing_api_key", Client{BaseURL: "http://localhost"}, "hi"},
		{"missing_base_url", Client{APIKey: "demo"}, "hi"},
		{"empty_question", Client{BaseURL: "http://localhost", APIKey: "demo"}, "   "},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := tc.client.Ask(context.Background(), nil, tc.question); err == nil {
				t.Fatal("expected configuration error")
			}
		})
	}
}
