package transcribe

import (
	"context"
	"errors"
)

var ErrNoSpeech = errors.New("no speech detected")

// Result голос → текст плюс определённый язык (ISO 639-1).
type Result struct {
	Text     string
	Language string
}

type Recognizer interface {
	Transcribe(ctx context.Context, wavPath string) (Result, error)
}
