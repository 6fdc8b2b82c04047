package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/audiobooker/internal/audiobook"
	"github.com/Vovarama1992/audiobooker/internal/delivery"
	"github.com/Vovarama1992/audiobooker/internal/error_notificator"
	"github.com/Vovarama1992/audiobooker/internal/pdf"
	"github.com/Vovarama1992/audiobooker/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	// текст достаём сами из text-layer, либо через внешний конвертер
	var extractor pdf.Extractor
	if url := os.Getenv("EXTRACTOR_URL"); url != "" {
		extractor = pdf.NewRemoteExtractor(url)
	} else {
		extractor = pdf.NewTextLayerExtractor()
	}

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := error_notificator.NewInfraFromEnv()
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// CLIENTS (TTS)
	// =========================================================================

	provider := os.Getenv("TTS_PROVIDER")
	if provider == "" {
		provider = "google"
	}

	var ttsClient speech.Synthesizer
	switch provider {
	case "google":
		ttsClient = speech.NewGoogleClient()
	case "openai":
		ttsClient = speech.NewOpenAIClient()
	case "elevenlabs":
		ttsClient = speech.NewElevenLabsClient()
	default:
		log.Fatalf("unknown TTS_PROVIDER: %s", provider)
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	pdfService := pdf.NewService(extractor)
	audiobookService := audiobook.NewService(pdfService, ttsClient, errService, provider)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	pageHandler := delivery.NewPageHandler()
	convertHandler := delivery.NewConvertHandler(audiobookService, zl)

	// ROUTES
	delivery.RegisterRoutes(r, pageHandler, convertHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "audiobooker",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
