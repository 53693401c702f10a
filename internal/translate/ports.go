package translate

import "context"

type Translator interface {
	// Translate converts text from source to target (ISO 639-1 codes).
	// Source may be "auto" or empty when unknown.
	Translate(ctx context.Context, text, source, target string) (string, error)
}
