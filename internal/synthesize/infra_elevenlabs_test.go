package synthesize

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestElevenLabsSynthesize(t *testing.T) {
	t.Parallel()

	pcm := []byte{0x01, 0x00, 0x02, 0x00}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/text-to-speech/voice-123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("output_format"); got != "pcm_16000" {
			t.Errorf("expected pcm_16000, got %q", got)
		}
		if got := r.Header.Get("xi-api-key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}

		var req struct {
			Text         string `json:"text"`
			ModelID      string `json:"model_id"`
			LanguageCode string `json:"language_code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Text != "Hola" {
			t.Errorf("expected text 'Hola', got %q", req.Text)
		}
		if req.ModelID != "eleven_multilingual_v2" {
			t.Errorf("expected multilingual model, got %q", req.ModelID)
		}
		if req.LanguageCode != "es" {
			t.Errorf("expected language 'es', got %q", req.LanguageCode)
		}

		w.Write(pcm)
	}))
	defer srv.Close()

	client := NewElevenLabsClient("test-key", "voice-123").WithBaseURL(srv.URL)
	got, err := client.Synthesize(context.Background(), "Hola", "es")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("expected %v, got %v", pcm, got)
	}
}

func TestElevenLabsSynthesizeOmitsEmptyLanguage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		if _, ok := req["language_code"]; ok {
			t.Error("empty language must be omitted from the payload")
		}
		w.Write([]byte{0x00, 0x00})
	}))
	defer srv.Close()

	client := NewElevenLabsClient("test-key", "voice-123").WithBaseURL(srv.URL)
	if _, err := client.Synthesize(context.Background(), "Hello", ""); err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
}

func TestElevenLabsSynthesizeEmptyBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewElevenLabsClient("test-key", "voice-123").WithBaseURL(srv.URL)
	if _, err := client.Synthesize(context.Background(), "Hello", "en"); err == nil {
		t.Fatal("expected an error on empty audio")
	}
}

func TestElevenLabsSynthesizeServiceError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "invalid api key"}`))
	}))
	defer srv.Close()

	client := NewElevenLabsClient("bad-key", "voice-123").WithBaseURL(srv.URL)
	if _, err := client.Synthesize(context.Background(), "Hello", "en"); err == nil {
		t.Fatal("expected an error on 401")
	}
}
