package speech

import "context"

type Options struct {
	Slow bool // медленный темп (~0.5x); обычный — 1x
}

// Synthesizer превращает текст в готовый MP3-буфер. Без стриминга:
// ответ читается целиком и отдаётся одним куском.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, opts Options) ([]byte, error) // текст → mp3
}
