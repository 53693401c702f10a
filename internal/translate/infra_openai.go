package translate

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient переводит через chat completion.
type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{client: openai.NewClient(apiKey)}
}

func (c *OpenAIClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	system := fmt.Sprintf(
		"You are a translation engine. Translate the user's message into the language with ISO 639-1 code %q. Reply with the translation only, no commentary.",
		target,
	)
	if source != "" && source != "auto" {
		system = fmt.Sprintf(
			"You are a translation engine. Translate the user's message from %q into %q (ISO 639-1 codes). Reply with the translation only, no commentary.",
			source, target,
		)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty translation")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("empty translation")
	}
	return out, nil
}
