package pdf

import (
	"context"
	"errors"
	"strings"
)

// ErrNoText: документ разобран корректно, но текстового слоя в нём нет
// (сканы, изображения). Отличаем от ошибки парсинга.
var ErrNoText = errors.New("pdf has no extractable text")

type Service struct {
	ex Extractor
}

func NewService(ex Extractor) *Service {
	return &Service{ex: ex}
}

// ExtractText собирает текст всех страниц по порядку и нормализует пробелы.
func (s *Service) ExtractText(ctx context.Context, data []byte) (string, error) {
	pages, err := s.ex.ExtractPages(ctx, data)
	if err != nil {
		return "", err
	}

	text := Normalize(strings.Join(pages, " "))
	if text == "" {
		return "", ErrNoText
	}

	return text, nil
}

// Normalize схлопывает любые пробельные последовательности (переводы строк,
// табы, повторные пробелы) в одиночный пробел и срезает края.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
