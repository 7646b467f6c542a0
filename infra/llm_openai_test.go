package infra

import (
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAICompleter_Complete(t *testing.T) {
	defer gock.Off()

	gock.New("http://llm.test").
		Post("/v1/chat/completions").
		MatchHeader("Authorization", "Bearer test-key").
		Reply(200).
		JSON(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": `{"crime":"theft"}`,
				},
			}},
		})

	completer := NewOpenAICompleter(LlmConfig{ApiKey: "test-key", BaseUrl: "http://llm.test/v1"})

	answer, err := completer.Complete(context.Background(), "instructions", "my phone was stolen")

	require.NoError(t, err)
	assert.Equal(t, `{"crime":"theft"}`, answer)
	assert.True(t, gock.IsDone())
}

func TestOpenAICompleter_Complete_provider_error(t *testing.T) {
	defer gock.Off()

	gock.New("http://llm.test").
		Post("/v1/chat/completions").
		Reply(500).
		JSON(map[string]any{"error": map[string]any{"message": "overloaded", "type": "server_error"}})

	completer := NewOpenAICompleter(LlmConfig{ApiKey: "test-key", BaseUrl: "http://llm.test/v1"})

	_, err := completer.Complete(context.Background(), "instructions", "text")

	assert.Error(t, err)
}
