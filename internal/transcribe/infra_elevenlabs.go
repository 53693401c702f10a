package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultElevenLabsURL = "https://api.elevenlabs.io"

// ElevenLabsClient транскрибирует через Scribe v1.
type ElevenLabsClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewElevenLabsClient(apiKey string) *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:  apiKey,
		baseURL: defaultElevenLabsURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// WithBaseURL overrides the API host.
func (c *ElevenLabsClient) WithBaseURL(url string) *ElevenLabsClient {
	c.baseURL = strings.TrimRight(url, "/")
	return c
}

func (c *ElevenLabsClient) Transcribe(ctx context.Context, wavPath string) (Result, error) {
	f, err := os.Open(wavPath)
	if err != nil {
		return Result{}, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(wavPath))
	if err != nil {
		return Result{}, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return Result{}, fmt.Errorf("read audio file: %w", err)
	}
	if err := mw.WriteField("model_id", "scribe_v1"); err != nil {
		return Result{}, err
	}
	if err := mw.Close(); err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/speech-to-text", &body)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("speech-to-text request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("speech-to-text error: %s", raw)
	}

	var parsed struct {
		Text         string `json:"text"`
		LanguageCode string `json:"language_code"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{}, fmt.Errorf("decode speech-to-text: %w", err)
	}

	text := strings.TrimSpace(parsed.Text)
	if text == "" {
		return Result{}, ErrNoSpeech
	}

	lang := ISOFromScribe(parsed.LanguageCode)
	if lang == "" && LikelyEnglish(text) {
		lang = "en"
	}

	return Result{Text: text, Language: lang}, nil
}
