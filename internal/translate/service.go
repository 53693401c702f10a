package translate

import "context"

// Service оборачивает бэкенд переводчика и срезает лишние вызовы.
type Service struct {
	backend Translator
}

func NewService(backend Translator) *Service {
	return &Service{backend: backend}
}

// Translate is a no-op when nothing needs translating: empty text, same
// source and target, or no target at all.
func (s *Service) Translate(ctx context.Context, text, source, target string) (string, error) {
	if text == "" || target == "" || source == target {
		return text, nil
	}
	return s.backend.Translate(ctx, text, source, target)
}
