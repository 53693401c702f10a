package synthesize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultElevenLabsURL = "https://api.elevenlabs.io"
	ttsModelID           = "eleven_multilingual_v2"
)

// ElevenLabsClient озвучивает текст выбранным голосом.
type ElevenLabsClient struct {
	apiKey  string
	voiceID string
	baseURL string
	client  *http.Client
}

func NewElevenLabsClient(apiKey, voiceID string) *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: defaultElevenLabsURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// WithBaseURL overrides the API host.
func (c *ElevenLabsClient) WithBaseURL(url string) *ElevenLabsClient {
	c.baseURL = strings.TrimRight(url, "/")
	return c
}

func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	url := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=pcm_16000", c.baseURL, c.voiceID)

	payload, err := json.Marshal(struct {
		Text         string `json:"text"`
		ModelID      string `json:"model_id"`
		LanguageCode string `json:"language_code,omitempty"`
	}{
		Text:         text,
		ModelID:      ttsModelID,
		LanguageCode: language,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tts failed: %s", string(b))
	}

	pcm, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts body: %w", err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio generated")
	}
	return pcm, nil
}
