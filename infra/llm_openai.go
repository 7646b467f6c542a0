package infra

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultOpenAIModel = openai.GPT4oMini

type OpenAICompleter struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAICompleter(config LlmConfig) *OpenAICompleter {
	clientConfig := openai.DefaultConfig(config.ApiKey)
	if config.BaseUrl != "" {
		clientConfig.BaseURL = config.BaseUrl
	}
	clientConfig.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	model := config.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAICompleter{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		temperature: config.Temperature,
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, instructions, input string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instructions},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "openai chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
