package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

// заголовок валидного MP3-фрейма
var fakeMP3 = []byte{0xFF, 0xFB, 0x90, 0x64, 0x00, 0x00, 0x00, 0x00}

func TestIsMP3(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{name: "id3 tag", data: []byte("ID3\x04\x00audio"), expected: true},
		{name: "frame sync ff fb", data: []byte{0xFF, 0xFB, 0x90}, expected: true},
		{name: "frame sync ff f3", data: []byte{0xFF, 0xF3, 0x44}, expected: true},
		{name: "html interstitial", data: []byte("<html><body>blocked</body></html>"), expected: false},
		{name: "empty", data: nil, expected: false},
		{name: "too short", data: []byte{0xFF}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMP3(tt.data); got != tt.expected {
				t.Errorf("IsMP3(%v) = %v, want %v", tt.data, got, tt.expected)
			}
		})
	}
}

func TestFragment(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		got := Fragment("Hello world.", 100)
		if len(got) != 1 || got[0] != "Hello world." {
			t.Errorf("Fragment = %v, want single fragment", got)
		}
	})

	t.Run("whitespace only gives nothing", func(t *testing.T) {
		if got := Fragment("   ", 100); len(got) != 0 {
			t.Errorf("Fragment = %v, want empty", got)
		}
	})

	t.Run("long text respects limit and keeps words", func(t *testing.T) {
		text := strings.Repeat("lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 10)
		got := Fragment(text, 100)

		if len(got) < 2 {
			t.Fatalf("expected multiple fragments, got %d", len(got))
		}
		for _, frag := range got {
			if utf8.RuneCountInString(frag) > 100 {
				t.Errorf("fragment longer than limit: %q (%d runes)", frag, utf8.RuneCountInString(frag))
			}
			if frag == "" {
				t.Error("empty fragment in output")
			}
			if strings.HasPrefix(frag, " ") || strings.HasSuffix(frag, " ") {
				t.Errorf("fragment has ragged edges: %q", frag)
			}
		}

		joined := strings.Join(got, " ")
		if strings.Join(strings.Fields(joined), " ") != strings.Join(strings.Fields(text), " ") {
			t.Error("fragments lost or reordered words")
		}
	})

	t.Run("unbreakable run is hard cut", func(t *testing.T) {
		got := Fragment(strings.Repeat("x", 250), 100)
		if len(got) != 3 {
			t.Fatalf("got %d fragments, want 3", len(got))
		}
		for _, frag := range got {
			if len(frag) > 100 {
				t.Errorf("fragment longer than limit: %d", len(frag))
			}
		}
	})
}

func TestGoogleClientSpeedParameter(t *testing.T) {
	tests := []struct {
		name     string
		slow     bool
		ttsspeed string
	}{
		{name: "normal", slow: false, ttsspeed: "1"},
		{name: "slow", slow: true, ttsspeed: "0.24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string][]string

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				w.Write(fakeMP3)
			}))
			defer srv.Close()

			t.Setenv("GOOGLE_TTS_BASE_URL", srv.URL)
			t.Setenv("TTS_LANGUAGE", "en")

			audio, err := NewGoogleClient().Synthesize(context.Background(), "Hello world.", Options{Slow: tt.slow})
			if err != nil {
				t.Fatalf("Synthesize failed: %v", err)
			}

			if !IsMP3(audio) {
				t.Error("returned buffer is not MP3")
			}
			if got := first(gotQuery["ttsspeed"]); got != tt.ttsspeed {
				t.Errorf("ttsspeed = %q, want %q", got, tt.ttsspeed)
			}
			if got := first(gotQuery["tl"]); got != "en" {
				t.Errorf("tl = %q, want en", got)
			}
			if got := first(gotQuery["client"]); got != "tw-ob" {
				t.Errorf("client = %q, want tw-ob", got)
			}
			if got := first(gotQuery["q"]); got != "Hello world." {
				t.Errorf("q = %q, want the text", got)
			}
		})
	}
}

func TestGoogleClientFragmentsLongText(t *testing.T) {
	var requests []map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Query())
		w.Write(fakeMP3)
	}))
	defer srv.Close()

	t.Setenv("GOOGLE_TTS_BASE_URL", srv.URL)
	t.Setenv("TTS_LANGUAGE", "en")

	text := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 8)
	audio, err := NewGoogleClient().Synthesize(context.Background(), text, Options{})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if len(requests) < 2 {
		t.Fatalf("expected fragmented requests, got %d", len(requests))
	}
	if len(audio) != len(fakeMP3)*len(requests) {
		t.Errorf("audio size = %d, want concatenation of %d responses", len(audio), len(requests))
	}

	for i, q := range requests {
		if got := first(q["idx"]); got != strconv.Itoa(i) {
			t.Errorf("request %d: idx = %q, want %d", i, got, i)
		}
		if got := first(q["total"]); got != strconv.Itoa(len(requests)) {
			t.Errorf("request %d: total = %q, want %d", i, got, len(requests))
		}
		if frag := first(q["q"]); utf8.RuneCountInString(frag) > googleFragmentLimit {
			t.Errorf("request %d: fragment longer than limit: %q", i, frag)
		}
	}
}

func TestGoogleClientRejectsNonAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>too many requests</html>"))
	}))
	defer srv.Close()

	t.Setenv("GOOGLE_TTS_BASE_URL", srv.URL)

	_, err := NewGoogleClient().Synthesize(context.Background(), "Hello", Options{})
	if err == nil {
		t.Fatal("expected error for HTML payload, got nil")
	}
}

func TestGoogleClientBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	t.Setenv("GOOGLE_TTS_BASE_URL", srv.URL)

	_, err := NewGoogleClient().Synthesize(context.Background(), "Hello", Options{})
	if err == nil {
		t.Fatal("expected error on status 503, got nil")
	}
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
