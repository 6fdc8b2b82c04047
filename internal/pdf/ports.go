package pdf

import "context"

// Extractor достаёт текст документа постранично, в порядке страниц.
// Реализации: локальный text-layer парсер и удалённый конвертер.
type Extractor interface {
	ExtractPages(ctx context.Context, data []byte) ([]string, error)
}
