package synthesize

import "context"

type Synthesizer interface {
	// Synthesize текст → голос. Returns 16 kHz mono PCM16 bytes.
	// Language is an optional ISO 639-1 hint for multilingual voices.
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}
