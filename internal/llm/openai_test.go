package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshitk-cp/mindshift/internal/domain"
)

func openAIReply(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []any{
			map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	}
}

func TestOpenAIClient_GenerateJSON(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openAIReply(`{"logic":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL)

	out, err := client.GenerateJSON(context.Background(), domain.GenerationRequest{
		Prompt:            "hello",
		SystemInstruction: SystemInstruction(),
		Schema:            domain.BeliefsSchema(),
	})
	require.NoError(t, err)

	assert.Equal(t, `{"logic":[]}`, out)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)

	format, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok, "response_format missing")
	assert.Equal(t, "json_schema", format["type"])
	schema := format["json_schema"].(map[string]any)
	assert.Equal(t, openAISchemaName, schema["name"])
	assert.Equal(t, true, schema["strict"])
}

func TestOpenAIClient_NoRetryOnError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"server error","type":"server_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL)
	_, err := client.GenerateJSON(context.Background(), domain.GenerationRequest{Prompt: "hello"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai API error")
	assert.Equal(t, 1, calls)
}
