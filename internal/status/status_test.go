package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusEndpoint(t *testing.T) {
	t.Parallel()

	feed := NewFeed()
	feed.Set(Snapshot{
		Phase:            "ready_for_reply",
		DetectedLanguage: "es",
		LastTranscript:   "Hola",
		LastTranslation:  "Hello",
	})

	srv := httptest.NewServer(NewRouter(feed))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("GET /status: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Phase != "ready_for_reply" || snap.DetectedLanguage != "es" {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewRouter(NewFeed()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestFeedDefaultsToIdle(t *testing.T) {
	t.Parallel()

	if got := NewFeed().Snapshot().Phase; got != "idle" {
		t.Errorf("expected initial phase 'idle', got %q", got)
	}
}
