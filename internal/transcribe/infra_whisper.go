package transcribe

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperClient транскрибирует через OpenAI Whisper.
type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient(apiKey string) *WhisperClient {
	return &WhisperClient{client: openai.NewClient(apiKey)}
}

func (c *WhisperClient) Transcribe(ctx context.Context, wavPath string) (Result, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: wavPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return Result{}, fmt.Errorf("whisper request: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return Result{}, ErrNoSpeech
	}

	lang := ISOFromWhisper(resp.Language)
	if lang == "" && LikelyEnglish(text) {
		lang = "en"
	}

	return Result{Text: text, Language: lang}, nil
}
