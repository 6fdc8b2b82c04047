package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	json "github.com/goccy/go-json"
)

type remoteResp struct {
	Text string `json:"text"`
}

// RemoteExtractor отдаёт PDF внешнему конвертеру: octet-stream → JSON {text}.
// Весь документ приходит одной "страницей".
type RemoteExtractor struct {
	URL string
}

func NewRemoteExtractor(url string) *RemoteExtractor {
	return &RemoteExtractor{URL: url}
}

func (c *RemoteExtractor) ExtractPages(ctx context.Context, data []byte) ([]string, error) {
	log.Printf("[pdf.remote] sending %d bytes to %s", len(data), c.URL)

	req, err := http.NewRequestWithContext(ctx, "POST", c.URL, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extractor service error: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	log.Printf("[pdf.remote] status: %d", resp.StatusCode)

	if resp.StatusCode != 200 {
		log.Printf("[pdf.remote] BAD STATUS BODY: %s", string(body))
		return nil, fmt.Errorf("extractor bad status %d", resp.StatusCode)
	}

	var out remoteResp
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}

	return []string{out.Text}, nil
}
