// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package luxbin

import (
	"fmt"
	"strconv"
)

const (
	// MinWavelength is the wavelength of alphabet index 0, in nm.
	MinWavelength = 400.0
	// SpectrumWidth is the nm span shared by the alphabet.
	SpectrumWidth = 300.0

	// QuantumWavelength marks space symbols in quantum mode and word gaps
	// in Morse mode (diamond NV centre zero-phonon line).
	QuantumWavelength = 637.0
	// QuantumColor is the spectral colour of QuantumWavelength.
	QuantumColor = "rgb(255, 31, 0)"

	// BeamDuration is the on-time of every light beam, in ms.
	BeamDuration = 5

	// Saturation and Lightness are the default colour shade, in percent.
	Saturation = 100
	Lightness  = 50
)

// LightBeam describes one encoded symbol.
type LightBeam struct {
	Symbol       string  `json:"symbol" yaml:"symbol"`
	Index        int     `json:"index" yaml:"index"`
	WavelengthNM float64 `json:"wavelength_nm" yaml:"wavelength_nm"`
	Color        string  `json:"color" yaml:"color"`
	DurationMS   int     `json:"duration_ms" yaml:"duration_ms"`
	RGB          RGB     `json:"rgb" yaml:"rgb,flow"`
	FrequencyHz  float64 `json:"frequency_hz" yaml:"frequency_hz"`
	EnergyEV     float64 `json:"energy_ev" yaml:"energy_ev"`
	Quantum      bool    `json:"quantum,omitempty" yaml:"quantum,omitempty"`
}

// Wavelength maps an alphabet index linearly onto [400, 700) nm.
func Wavelength(s Symbol) float64 {
	return MinWavelength + (float64(s)/AlphabetSize)*SpectrumWidth
}

// Hue maps a wavelength in the alphabet band onto [0, 360) degrees.
func Hue(nm float64) float64 {
	return (nm - MinWavelength) / SpectrumWidth * 360
}

// Color returns the HSL descriptor for a hue in the default shade.
func Color(hue float64) string {
	return ShadedColor(hue, DefaultShade)
}

// ShadedColor returns the HSL descriptor for a hue in the given shade.
func ShadedColor(hue float64, shade Shade) string {
	return fmt.Sprintf("hsl(%s, %d%%, %d%%)", strconv.FormatFloat(hue, 'f', 1, 64), shade.Saturation, shade.Lightness)
}

// Beam encodes a single symbol. In quantum mode a space becomes the
// QuantumWavelength marker.
func Beam(s Symbol, quantum bool) LightBeam {
	return ShadedBeam(s, quantum, DefaultShade)
}

// ShadedBeam is Beam with an explicit colour shade. The quantum marker
// keeps its spectral colour.
func ShadedBeam(s Symbol, quantum bool, shade Shade) LightBeam {
	if quantum && s.IsSpace() {
		return LightBeam{
			Symbol:       s.String(),
			Index:        int(s),
			WavelengthNM: QuantumWavelength,
			Color:        QuantumColor,
			DurationMS:   BeamDuration,
			RGB:          WavelengthToRGB(QuantumWavelength),
			FrequencyHz:  FrequencyHz(QuantumWavelength),
			EnergyEV:     EnergyEV(QuantumWavelength),
			Quantum:      true,
		}
	}

	nm := Wavelength(s)
	hue := Hue(nm)
	return LightBeam{
		Symbol:       s.String(),
		Index:        int(s),
		WavelengthNM: nm,
		Color:        ShadedColor(hue, shade),
		DurationMS:   BeamDuration,
		RGB:          HSLToRGB(hue, float64(shade.Saturation), float64(shade.Lightness)),
		FrequencyHz:  FrequencyHz(nm),
		EnergyEV:     EnergyEV(nm),
	}
}

// LightSequence encodes every symbol, one beam per symbol.
func LightSequence(symbols Symbols, quantum bool) []LightBeam {
	return ShadedLightSequence(symbols, quantum, DefaultShade)
}

// ShadedLightSequence is LightSequence with an explicit colour shade.
func ShadedLightSequence(symbols Symbols, quantum bool, shade Shade) []LightBeam {
	beams := make([]LightBeam, len(symbols))
	for i, s := range symbols {
		beams[i] = ShadedBeam(s, quantum, shade)
	}
	return beams
}

// TotalDuration sums beam durations in ms.
func TotalDuration(beams []LightBeam) int {
	total := 0
	for _, b := range beams {
		total += b.DurationMS
	}
	return total
}
