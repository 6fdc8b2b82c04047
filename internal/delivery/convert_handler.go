package delivery

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Vovarama1992/audiobooker/internal/audiobook"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"
)

type ConvertHandler struct {
	converter audiobook.Converter
	log       *logger.ZapLogger
}

func NewConvertHandler(converter audiobook.Converter, log *logger.ZapLogger) *ConvertHandler {
	return &ConvertHandler{
		converter: converter,
		log:       log,
	}
}

func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(20 << 20)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid multipart", Error: err})
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "missing file", Error: err})
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		http.Error(w, "only .pdf files are accepted", http.StatusBadRequest)
		return
	}

	speed := r.FormValue("speed")
	if speed != "normal" && speed != "slow" {
		http.Error(w, "invalid speed: want normal or slow", http.StatusBadRequest)
		return
	}

	// pitch принимаем для совместимости формы, на синтез он не влияет
	pitch := 1.0
	if raw := r.FormValue("pitch"); raw != "" {
		pitch, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid pitch", http.StatusBadRequest)
			return
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.converter.Convert(r.Context(), audiobook.Request{
		Filename: header.Filename,
		Data:     data,
		Slow:     speed == "slow",
		Pitch:    pitch,
	})
	if err != nil {
		h.writeStageError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":            res.ID,
		"source":        header.Filename,
		"text_preview":  res.Preview,
		"truncated":     res.Truncated,
		"chars":         res.Chars,
		"audio_base64":  base64.StdEncoding.EncodeToString(res.Audio),
		"download_name": res.DownloadName,
		"mime_type":     "audio/mp3",
		"size_bytes":    res.AudioBytes,
		"size_human":    humanize.Bytes(uint64(res.AudioBytes)),
		"provider":      res.Provider,
		"slow":          speed == "slow",
	})
}

// провал извлечения — проблема входного файла (422), провал синтеза —
// проблема внешнего сервиса (502)
func (h *ConvertHandler) writeStageError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	stage := "internal"

	var stageErr *audiobook.StageError
	if errors.As(err, &stageErr) {
		stage = stageErr.Stage
		switch stageErr.Stage {
		case audiobook.StageExtraction:
			status = http.StatusUnprocessableEntity
		case audiobook.StageSynthesis:
			status = http.StatusBadGateway
		}
	}

	h.log.Log(logger.LogEntry{Level: "error", Message: "conversion failed at " + stage, Error: err})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"stage": stage,
		"error": err.Error(),
	})
}
