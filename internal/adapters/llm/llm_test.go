package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

const (
	testSystem = "Summarise the headlines."
	testUser   = "Acme Corp beats earnings; shares jump 5%."
)

func chatCompletionBody(content string) string {
	return `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "test-model",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": ` + jsonString(content) + `}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
	}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// captureServer answers every request whose path ends in suffix with body and
// records the decoded request payload.
func captureServer(t *testing.T, suffix, body string, got *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, suffix) {
			http.NotFound(w, r)
			return
		}
		json.NewDecoder(r.Body).Decode(got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func messagesOf(t *testing.T, payload map[string]interface{}) []map[string]interface{} {
	t.Helper()
	raw, _ := payload["messages"].([]interface{})
	out := make([]map[string]interface{}, 0, len(raw))
	for _, m := range raw {
		if mm, ok := m.(map[string]interface{}); ok {
			out = append(out, mm)
		}
	}
	return out
}

func TestGroqComplete(t *testing.T) {
	var payload map[string]interface{}
	srv := captureServer(t, "/chat/completions", chatCompletionBody("Acme rallied after earnings."), &payload)
	defer srv.Close()

	c := NewGroqClient(Options{APIKey: "k", BaseURL: srv.URL})
	reply, err := c.Complete(context.Background(), testSystem, testUser)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Acme rallied after earnings.", reply)

	assert.Equal(t, "llama-3.1-8b-instant", payload["model"])
	assert.Equal(t, float64(1), payload["top_p"])
	assert.Equal(t, float64(0), payload["seed"])
	temp, _ := payload["temperature"].(float64)
	assert.Equal(t, true, temp < 1e-6)

	msgs := messagesOf(t, payload)
	assert.Equal(t, 2, len(msgs))
	assert.Equal(t, "system", msgs[0]["role"])
	assert.Equal(t, testSystem, msgs[0]["content"])
	assert.Equal(t, "user", msgs[1]["role"])
	assert.Equal(t, testUser, msgs[1]["content"])
}

func TestGroqComplete_NoChoices(t *testing.T) {
	var payload map[string]interface{}
	body := `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`
	srv := captureServer(t, "/chat/completions", body, &payload)
	defer srv.Close()

	reply, err := NewGroqClient(Options{BaseURL: srv.URL}).Complete(context.Background(), testSystem, testUser)

	assert.Equal(t, nil, err)
	assert.Equal(t, "", reply)
}

func TestGroqComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer srv.Close()

	_, err := NewGroqClient(Options{APIKey: "bad", BaseURL: srv.URL}).Complete(context.Background(), testSystem, testUser)

	assert.NotEqual(t, nil, err)
}

func TestOpenAIComplete(t *testing.T) {
	var payload map[string]interface{}
	srv := captureServer(t, "/chat/completions", chatCompletionBody("Acme rallied."), &payload)
	defer srv.Close()

	c := NewOpenAIClient(Options{APIKey: "k", BaseURL: srv.URL + "/"})
	reply, err := c.Complete(context.Background(), testSystem, testUser)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Acme rallied.", reply)
	assert.Equal(t, "gpt-4o-mini", payload["model"])
	assert.Equal(t, float64(0), payload["temperature"])
	assert.Equal(t, float64(1), payload["top_p"])
	assert.Equal(t, float64(0), payload["seed"])
	assert.Equal(t, 2, len(messagesOf(t, payload)))
}

func TestAnthropicComplete(t *testing.T) {
	body := `{
		"id": "msg_01",
		"type": "message",
		"role": "assistant",
		"model": "claude-3-5-haiku-latest",
		"content": [{"type": "text", "text": "Acme beat estimates."}],
		"stop_reason": "end_turn",
		"stop_sequence": null,
		"usage": {"input_tokens": 10, "output_tokens": 5}
	}`
	var payload map[string]interface{}
	srv := captureServer(t, "/v1/messages", body, &payload)
	defer srv.Close()

	c := NewAnthropicClient(Options{APIKey: "k", BaseURL: srv.URL})
	reply, err := c.Complete(context.Background(), testSystem, testUser)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Acme beat estimates.", reply)
	assert.Equal(t, "claude-3-5-haiku-latest", payload["model"])
	assert.Equal(t, float64(0), payload["temperature"])
	assert.Equal(t, 1, len(messagesOf(t, payload)))
}

func TestNew(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"", ProviderGroq},
		{"groq", ProviderGroq},
		{"OpenAI", ProviderOpenAI},
		{" anthropic ", ProviderAnthropic},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s, err := New(tt.provider, Options{})
			assert.Equal(t, nil, err)
			assert.Equal(t, tt.want, s.Name())
		})
	}

	_, err := New("ollama", Options{})
	assert.NotEqual(t, nil, err)
}
