package speech

import (
	"context"
	"fmt"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

func NewOpenAIClient() *OpenAIClient {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		panic("OPENAI_API_KEY not set")
	}

	cfg := openai.DefaultConfig(key)
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	voice := openai.SpeechVoice(os.Getenv("OPENAI_TTS_VOICE"))
	if voice == "" {
		voice = openai.VoiceAlloy
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		voice:  voice,
	}
}

// TEXT → SPEECH
func (c *OpenAIClient) Synthesize(ctx context.Context, text string, opts Options) ([]byte, error) {
	speed := 1.0
	if opts.Slow {
		speed = 0.5
	}

	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          speed,
	})
	if err != nil {
		return nil, fmt.Errorf("openai tts: %w", err)
	}
	defer resp.Close()

	return io.ReadAll(resp)
}
