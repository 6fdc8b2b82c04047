package pdf

import (
	"bytes"
	"context"
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

type TextLayerExtractor struct{}

func NewTextLayerExtractor() *TextLayerExtractor {
	return &TextLayerExtractor{}
}

func (e *TextLayerExtractor) ExtractPages(ctx context.Context, data []byte) (pages []string, err error) {
	// ledongthuc/pdf паникует на части битых файлов — переводим в ошибку
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()

	// кеш шрифтов на весь документ
	fonts := make(map[string]*pdflib.Font)

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", i, err)
		}

		pages = append(pages, text)
	}

	return pages, nil
}
