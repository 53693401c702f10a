package translate

import (
	"context"
	"testing"
)

type recordingBackend struct {
	calls int
	out   string
}

func (b *recordingBackend) Translate(_ context.Context, text, _, _ string) (string, error) {
	b.calls++
	if b.out == "" {
		return text, nil
	}
	return b.out, nil
}

func TestServicePassthrough(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		text   string
		source string
		target string
	}{
		{"same language", "Hello", "en", "en"},
		{"empty text", "", "es", "en"},
		{"no target", "Hello", "en", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			backend := &recordingBackend{out: "SHOULD NOT APPEAR"}
			svc := NewService(backend)

			got, err := svc.Translate(context.Background(), tc.text, tc.source, tc.target)
			if err != nil {
				t.Fatalf("Translate failed: %v", err)
			}
			if got != tc.text {
				t.Errorf("expected passthrough %q, got %q", tc.text, got)
			}
			if backend.calls != 0 {
				t.Errorf("expected no backend call, got %d", backend.calls)
			}
		})
	}
}

func TestServiceDelegates(t *testing.T) {
	t.Parallel()

	backend := &recordingBackend{out: "Hola"}
	svc := NewService(backend)

	got, err := svc.Translate(context.Background(), "Hello", "en", "es")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "Hola" {
		t.Errorf("expected 'Hola', got %q", got)
	}
	if backend.calls != 1 {
		t.Errorf("expected 1 backend call, got %d", backend.calls)
	}
}
