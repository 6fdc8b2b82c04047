package audiobook

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	notificator "github.com/Vovarama1992/audiobooker/internal/error_notificator"
	"github.com/Vovarama1992/audiobooker/internal/pdf"
	"github.com/Vovarama1992/audiobooker/internal/speech"
	"github.com/google/uuid"
)

const previewLimit = 1000

type Service struct {
	pdf      *pdf.Service
	synth    speech.Synthesizer
	notifier notificator.Notificator
	provider string
}

func NewService(pdfSvc *pdf.Service, synth speech.Synthesizer, notifier notificator.Notificator, provider string) *Service {
	return &Service{
		pdf:      pdfSvc,
		synth:    synth,
		notifier: notifier,
		provider: provider,
	}
}

// Convert: PDF → текст → MP3. После провала извлечения синтез не зовётся.
func (s *Service) Convert(ctx context.Context, req Request) (*Result, error) {
	text, err := s.pdf.ExtractText(ctx, req.Data)
	if err != nil {
		s.alert(StageExtraction, err, req.Filename)
		return nil, &StageError{Stage: StageExtraction, Err: err}
	}

	audio, err := s.synth.Synthesize(ctx, text, speech.Options{Slow: req.Slow})
	if err != nil {
		s.alert(StageSynthesis, err, req.Filename)
		return nil, &StageError{Stage: StageSynthesis, Err: err}
	}

	preview, truncated := Preview(text)

	return &Result{
		ID:           uuid.NewString(),
		Text:         text,
		Preview:      preview,
		Truncated:    truncated,
		Audio:        audio,
		DownloadName: DownloadName(req.Filename),
		Provider:     s.provider,
		Chars:        utf8.RuneCountInString(text),
		AudioBytes:   len(audio),
	}, nil
}

// алерт не должен ни тормозить, ни ронять ответ пользователю
func (s *Service) alert(stage string, err error, filename string) {
	if s.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if nErr := s.notifier.Notify(ctx, stage, err, "файл: "+filename); nErr != nil {
			log.Printf("[audiobook] notify fail: %v", nErr)
		}
	}()
}

// Preview — первые 1000 символов текста для страницы.
func Preview(text string) (string, bool) {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text, false
	}
	return string(runes[:previewLimit]), true
}

// DownloadName: "report.pdf" → "report_audiobook.mp3".
func DownloadName(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "document"
	}
	return stem + "_audiobook.mp3"
}
