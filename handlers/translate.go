// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/luxbin/auth"
	"github.com/danielhkuo/luxbin/cliparse"
	"github.com/danielhkuo/luxbin/emitter"
	"github.com/danielhkuo/luxbin/luxbin"
	"github.com/danielhkuo/luxbin/middleware"
	"github.com/danielhkuo/luxbin/models"
	"github.com/danielhkuo/luxbin/translator"
)

// ServiceVersion is reported by the service descriptions
const ServiceVersion = "1.0.0"

// TransmissionRecorder persists a transmission. *db.Store satisfies it.
type TransmissionRecorder interface {
	Record(ctx context.Context, t models.Transmission) error
}

// Emitter queues encoded sequences for light hardware. *emitter.Emitter satisfies it.
type Emitter interface {
	EnqueueLight(msg emitter.LightMessage) bool
	EnqueueMorse(msg emitter.MorseMessage) bool
}

// TranslateHandler serves the encoding endpoints. The recorder, emitter and
// translator are optional; nil disables each.
type TranslateHandler struct {
	recorder   TransmissionRecorder
	emitter    Emitter
	translator translator.Translator
	cfg        cliparse.Config
}

func NewTranslateHandler(recorder TransmissionRecorder, em Emitter, tr translator.Translator, cfg cliparse.Config) *TranslateHandler {
	return &TranslateHandler{recorder: recorder, emitter: em, translator: tr, cfg: cfg}
}

// encodeInput is a validated request, after optional pre-translation
type encodeInput struct {
	text       string
	translated string
	quantum    bool
	shade      *luxbin.Shade
}

// colours returns the requested shade or the default one
func (in encodeInput) colours() luxbin.Shade {
	if in.shade == nil {
		return luxbin.DefaultShade
	}
	return *in.shade
}

// Translate handles POST /translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readInput(w, r)
	if !ok {
		return
	}

	symbols := luxbin.EncodeSymbols(in.text)
	beams := luxbin.ShadedLightSequence(symbols, in.quantum, in.colours())
	totalMS := luxbin.TotalDuration(beams)
	rep := symbols.String()

	id := uuid.NewString()
	recorded := h.record(r, models.Transmission{
		ID:              id,
		Mode:            models.ModeLight,
		Quantum:         in.quantum,
		CharacterCount:  luxbin.CharacterCount(in.text),
		SymbolCount:     len(symbols),
		Representation:  rep,
		TotalDurationMS: totalMS,
	})

	emitted := false
	if h.emitter != nil {
		emitted = h.emitter.EnqueueLight(emitter.LightMessage{
			TransmissionID:       id,
			LuxbinRepresentation: rep,
			Quantum:              in.quantum,
			TotalDurationMS:      totalMS,
			Sequence:             beams,
		})
	}

	slog.Info("light sequence encoded",
		"input", humanize.Bytes(uint64(len(in.text))),
		"symbols", len(symbols),
		"quantum", in.quantum,
		"transmission_id", id,
	)

	resp := models.TranslateResponse{
		LuxbinRepresentation: rep,
		LightSequence:        beams,
		TotalDurationSeconds: float64(totalMS) / 1000,
		Shade:                in.shade,
		TranslatedText:       in.translated,
	}
	if recorded || emitted {
		resp.TransmissionID = id
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// TranslateMorse handles POST /translate-morse
func (h *TranslateHandler) TranslateMorse(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readInput(w, r)
	if !ok {
		return
	}

	symbols := luxbin.EncodeSymbols(in.text)
	pulses := luxbin.ShadedMorseSequence(symbols, in.quantum, in.colours())
	stats := luxbin.Stats(pulses, luxbin.CharacterCount(in.text))
	rep := symbols.String()

	id := uuid.NewString()
	recorded := h.record(r, models.Transmission{
		ID:              id,
		Mode:            models.ModeMorse,
		Quantum:         in.quantum,
		CharacterCount:  stats.CharacterCount,
		SymbolCount:     len(symbols),
		Representation:  rep,
		TotalDurationMS: stats.TotalDurationMS,
	})

	emitted := false
	if h.emitter != nil {
		emitted = h.emitter.EnqueueMorse(emitter.MorseMessage{
			TransmissionID:       id,
			LuxbinRepresentation: rep,
			Quantum:              in.quantum,
			Statistics:           stats,
			Sequence:             pulses,
		})
	}

	slog.Info("morse sequence encoded",
		"input", humanize.Bytes(uint64(len(in.text))),
		"symbols", len(symbols),
		"pulses", stats.TotalPulses,
		"duration_ms", stats.TotalDurationMS,
		"transmission_id", id,
	)

	resp := models.TranslateMorseResponse{
		LuxbinRepresentation: rep,
		PulseSequence:        pulses,
		Statistics:           stats,
		Shade:                in.shade,
		TranslatedText:       in.translated,
	}
	if recorded || emitted {
		resp.TransmissionID = id
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// readInput parses and validates the request body and runs the optional
// pre-translation. It writes the error response itself when ok is false.
func (h *TranslateHandler) readInput(w http.ResponseWriter, r *http.Request) (encodeInput, bool) {
	var req models.TranslateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return encodeInput{}, false
	}

	text, err := requestText(req.Text)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return encodeInput{}, false
	}

	in := encodeInput{text: text, quantum: req.Quantum(), shade: req.Shade()}
	if req.TargetLanguage == "" {
		return in, true
	}

	if h.translator == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, translator.ErrNotConfigured.Error())
		return encodeInput{}, false
	}

	start := time.Now()
	translated, err := h.translator.Translate(r.Context(), text, req.TargetLanguage)
	switch {
	case errors.Is(err, translator.ErrInvalidLanguage):
		middleware.ErrorResponse(w, http.StatusBadRequest, "target_language is not a valid language name")
		return encodeInput{}, false
	case err != nil:
		slog.Error("translation failed", "target_language", req.TargetLanguage, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Translation failed")
		return encodeInput{}, false
	}

	slog.Info("text translated",
		"target_language", req.TargetLanguage,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	in.text = translated
	in.translated = translated
	return in, true
}

var (
	errTextRequired = errors.New("text is required")
	errTextType     = errors.New("text must be a string")
)

// requestText extracts the text field; absent and null are both missing
func requestText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", errTextRequired
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", errTextType
	}
	return text, nil
}

// record stores the transmission when a recorder is configured.
// Failures are logged and never fail the request.
func (h *TranslateHandler) record(r *http.Request, t models.Transmission) bool {
	if h.recorder == nil {
		return false
	}

	if h.cfg.IPHashSalt != "" {
		hash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
		t.IPHash = &hash
	}
	t.CreatedAt = time.Now().UTC()

	if err := h.recorder.Record(r.Context(), t); err != nil {
		slog.Error("failed to record transmission", "transmission_id", t.ID, "error", err)
		return false
	}
	return true
}

// DescribeTranslate handles GET /translate
func (h *TranslateHandler) DescribeTranslate(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ServiceDescription{
		Service:     "LUXBIN Light Language Translator",
		Version:     ServiceVersion,
		Method:      "POST",
		Endpoint:    "/translate",
		Description: "Encodes text into a sequence of visible-light beams, one per LUXBIN symbol",
		Parameters:  h.parameters(),
		Timing:      map[string]int{"beam": luxbin.BeamDuration},
		Alphabet:    luxbin.AlphabetSize,
	})
}

// DescribeTranslateMorse handles GET /translate-morse
func (h *TranslateHandler) DescribeTranslateMorse(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ServiceDescription{
		Service:     "LUXBIN Morse Light Translator",
		Version:     ServiceVersion,
		Method:      "POST",
		Endpoint:    "/translate-morse",
		Description: "Encodes text into timed on/off light pulses carrying each symbol's Morse pattern",
		Parameters:  h.parameters(),
		Timing: map[string]int{
			"dot":            luxbin.DotDuration,
			"dash":           luxbin.DashDuration,
			"intra_char_gap": luxbin.IntraCharGap,
			"char_gap":       luxbin.CharGap,
			"word_gap":       luxbin.WordGap,
		},
		Alphabet: luxbin.AlphabetSize,
	})
}

func (h *TranslateHandler) parameters() map[string]string {
	params := map[string]string{
		"text":           "string (required)",
		"enable_quantum": "boolean (optional, default true)",
		"part_of_speech": "string (optional): " + strings.Join(luxbin.PartsOfSpeech(), ", "),
		"tense":          "string (optional): " + strings.Join(luxbin.Tenses(), ", "),
	}
	if h.translator != nil {
		params["target_language"] = "string (optional)"
	}
	return params
}

// Alphabet handles GET /alphabet
func (h *TranslateHandler) Alphabet(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.AlphabetResponse{
		Size:              luxbin.AlphabetSize,
		QuantumWavelength: luxbin.QuantumWavelength,
		Symbols:           luxbin.Table(),
	})
}
