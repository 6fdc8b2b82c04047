package audiobook

import (
	"context"
	"fmt"
)

const (
	StageExtraction = "extraction"
	StageSynthesis  = "synthesis"
)

// StageError привязывает ошибку к этапу конвейера. По этапу делается
// HTTP-маппинг и текст для пользователя.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Request — одна конвертация целиком в памяти. Pitch принимается ради
// совместимости формы и на звук не влияет: бэкенды его не принимают.
type Request struct {
	Filename string
	Data     []byte
	Slow     bool
	Pitch    float64
}

type Result struct {
	ID           string
	Text         string
	Preview      string
	Truncated    bool
	Audio        []byte
	DownloadName string
	Provider     string
	Chars        int
	AudioBytes   int
}

type Converter interface {
	Convert(ctx context.Context, req Request) (*Result, error)
}
