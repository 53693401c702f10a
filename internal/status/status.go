package status

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Snapshot is the externally visible session state.
type Snapshot struct {
	Phase            string `json:"phase"`
	DetectedLanguage string `json:"detectedLanguage,omitempty"`
	LastTranscript   string `json:"lastTranscript,omitempty"`
	LastTranslation  string `json:"lastTranslation,omitempty"`
}

// Feed holds the latest snapshot for the local debug endpoint.
type Feed struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewFeed() *Feed {
	return &Feed{snap: Snapshot{Phase: "idle"}}
}

func (f *Feed) Set(snap Snapshot) {
	f.mu.Lock()
	f.snap = snap
	f.mu.Unlock()
}

func (f *Feed) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snap
}

// NewRouter serves the read-only session state on localhost.
func NewRouter(feed *Feed) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(feed.Snapshot())
	})

	return r
}
