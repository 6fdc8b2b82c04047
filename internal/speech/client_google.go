package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Эндпоинт принимает q не длиннее ~100 символов, длиннее режем сами.
const googleFragmentLimit = 100

// GoogleClient ходит в публичный translate_tts (без ключа).
type GoogleClient struct {
	baseURL string
	lang    string
	httpCli *http.Client
}

func NewGoogleClient() *GoogleClient {
	base := os.Getenv("GOOGLE_TTS_BASE_URL")
	if base == "" {
		base = "https://translate.google.com"
	}

	lang := os.Getenv("TTS_LANGUAGE")
	if lang == "" {
		lang = "en"
	}

	return &GoogleClient{
		baseURL: base,
		lang:    lang,
		httpCli: http.DefaultClient,
	}
}

// TEXT → SPEECH
func (c *GoogleClient) Synthesize(ctx context.Context, text string, opts Options) ([]byte, error) {
	fragments := Fragment(text, googleFragmentLimit)
	if len(fragments) == 0 {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	speed := "1"
	if opts.Slow {
		speed = "0.24"
	}

	// MP3-фреймы склеиваются простой конкатенацией
	var audio bytes.Buffer

	for i, frag := range fragments {
		q := url.Values{}
		q.Set("ie", "UTF-8")
		q.Set("client", "tw-ob")
		q.Set("tl", c.lang)
		q.Set("q", frag)
		q.Set("ttsspeed", speed)
		q.Set("total", strconv.Itoa(len(fragments)))
		q.Set("idx", strconv.Itoa(i))
		q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(frag)))

		req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/translate_tts?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")

		resp, err := c.httpCli.Do(req)
		if err != nil {
			return nil, fmt.Errorf("google tts: %w", err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, readErr
		}

		if resp.StatusCode != 200 {
			log.Printf("[speech.google] BAD STATUS %d BODY: %s", resp.StatusCode, string(body))
			return nil, fmt.Errorf("google tts bad status %d", resp.StatusCode)
		}
		if !IsMP3(body) {
			return nil, fmt.Errorf("google tts returned non-audio payload, likely throttled")
		}

		audio.Write(body)
	}

	return audio.Bytes(), nil
}

// Fragment режет текст на куски не длиннее max рун, предпочитая рвать
// по пробелу или после знака препинания. Пустые куски выбрасываются.
func Fragment(text string, max int) []string {
	if max < 1 {
		max = googleFragmentLimit
	}

	runes := []rune(text)

	var out []string
	for len(runes) > 0 {
		if len(runes) <= max {
			if frag := strings.TrimSpace(string(runes)); frag != "" {
				out = append(out, frag)
			}
			break
		}

		cutEnd, next := max, max
		for i := max; i > 0; i-- {
			if unicode.IsSpace(runes[i]) {
				cutEnd, next = i, i+1
				break
			}
			if i < max && strings.ContainsRune(".,;:!?", runes[i]) {
				cutEnd, next = i+1, i+1
				break
			}
		}

		if frag := strings.TrimSpace(string(runes[:cutEnd])); frag != "" {
			out = append(out, frag)
		}
		runes = runes[next:]
	}

	return out
}
