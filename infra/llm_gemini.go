package infra

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type GeminiCompleter struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiCompleter(ctx context.Context, config LlmConfig) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.ApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create gemini client")
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiCompleter{
		client:      client,
		model:       model,
		temperature: config.Temperature,
	}, nil
}

func (c *GeminiCompleter) Complete(ctx context.Context, instructions, input string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(input), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instructions, genai.RoleUser),
		Temperature:       genai.Ptr(c.temperature),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content failed")
	}
	return resp.Text(), nil
}
