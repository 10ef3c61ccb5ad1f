package models

import (
	"encoding/json"
	"time"

	"github.com/danielhkuo/luxbin/luxbin"
)

// Transmission modes
const (
	ModeLight = "light"
	ModeMorse = "morse"
)

// Request types

// TranslateRequest is the body of POST /translate and POST /translate-morse.
// Text stays raw so a non-string value can be told apart from a missing one.
type TranslateRequest struct {
	Text           json.RawMessage `json:"text"`
	EnableQuantum  *bool           `json:"enable_quantum,omitempty"`
	TargetLanguage string          `json:"target_language,omitempty"`
	PartOfSpeech   string          `json:"part_of_speech,omitempty"`
	Tense          string          `json:"tense,omitempty"`
}

// Quantum returns the quantum flag, defaulting to true
func (r TranslateRequest) Quantum() bool {
	if r.EnableQuantum == nil {
		return true
	}
	return *r.EnableQuantum
}

// Shade returns the grammar shade, or nil when neither part_of_speech nor
// tense was given. Unknown names fall back to luxbin's defaults.
func (r TranslateRequest) Shade() *luxbin.Shade {
	if r.PartOfSpeech == "" && r.Tense == "" {
		return nil
	}
	shade := luxbin.GrammarShade(r.PartOfSpeech, r.Tense)
	return &shade
}

// Response types

type TranslateResponse struct {
	LuxbinRepresentation string             `json:"luxbin_representation" yaml:"luxbin_representation"`
	LightSequence        []luxbin.LightBeam `json:"light_sequence" yaml:"light_sequence"`
	TotalDurationSeconds float64            `json:"total_duration_seconds" yaml:"total_duration_seconds"`
	Shade                *luxbin.Shade      `json:"shade,omitempty" yaml:"shade,omitempty"`
	TransmissionID       string             `json:"transmission_id,omitempty" yaml:"transmission_id,omitempty"`
	TranslatedText       string             `json:"translated_text,omitempty" yaml:"translated_text,omitempty"`
}

type TranslateMorseResponse struct {
	LuxbinRepresentation string              `json:"luxbin_representation" yaml:"luxbin_representation"`
	PulseSequence        []luxbin.MorsePulse `json:"pulse_sequence" yaml:"pulse_sequence"`
	Statistics           luxbin.MorseStats   `json:"statistics" yaml:"statistics"`
	Shade                *luxbin.Shade       `json:"shade,omitempty" yaml:"shade,omitempty"`
	TransmissionID       string              `json:"transmission_id,omitempty" yaml:"transmission_id,omitempty"`
	TranslatedText       string              `json:"translated_text,omitempty" yaml:"translated_text,omitempty"`
}

// ServiceDescription is returned by the GET variants of the translate routes
type ServiceDescription struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Method      string            `json:"method"`
	Endpoint    string            `json:"endpoint"`
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters"`
	Timing      map[string]int    `json:"timing_ms,omitempty"`
	Alphabet    int               `json:"alphabet_size"`
}

// AlphabetResponse is returned by GET /alphabet
type AlphabetResponse struct {
	Size              int                 `json:"size" yaml:"size"`
	QuantumWavelength float64             `json:"quantum_wavelength_nm" yaml:"quantum_wavelength_nm"`
	Symbols           []luxbin.SymbolInfo `json:"symbols" yaml:"symbols"`
}

// Domain types

// Transmission is one logged translation
type Transmission struct {
	ID              string    `json:"id"`
	Mode            string    `json:"mode"`
	Quantum         bool      `json:"quantum"`
	CharacterCount  int       `json:"character_count"`
	SymbolCount     int       `json:"symbol_count"`
	Representation  string    `json:"luxbin_representation"`
	TotalDurationMS int       `json:"total_duration_ms"`
	IPHash          *string   `json:"-"` // Never expose in JSON
	CreatedAt       time.Time `json:"created_at"`
}

// TransmissionView adds display-only fields to a Transmission
type TransmissionView struct {
	Transmission
	Recorded string `json:"recorded"`
}

type TransmissionListResponse struct {
	Transmissions []TransmissionView `json:"transmissions"`
	Count         int                `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
