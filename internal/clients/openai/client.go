package openai

import (
	"context"
	"fmt"

	"preorder-server/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

// defaultModel is used for receipt field extraction and contextual PII
// detection. Both are short, single-turn, deterministic-temperature calls.
const defaultModel = openai.ChatModelGPT4oMini

type Client struct {
	client openai.Client
	logger *observability.Logger
}

func NewClient(apiKey string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	client := openai.NewClient(openaiOption.WithAPIKey(apiKey))
	return &Client{client: client, logger: logger}, nil
}

// Complete runs a single-turn chat completion and returns the assistant text
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: defaultModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(0),
	})
	if err != nil {
		c.logger.Error(ctx, "OpenAI completion failed", err)
		return "", fmt.Errorf("OpenAI completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
