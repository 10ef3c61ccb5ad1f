// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package luxbin

// Morse timing in ms. Ratios follow ITU: dot 1, dash 3, gaps 1/3/7.
const (
	DotDuration  = 5
	DashDuration = 15
	IntraCharGap = 5
	CharGap      = 15
	WordGap      = 35
)

// FallbackPattern is used for symbols with no Morse entry.
const FallbackPattern = "...."

// GapColor is the colour of zero-wavelength gap pulses.
const GapColor = "rgb(0, 0, 0)"

var morseTable = map[byte]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",

	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
}

// MorsePattern returns the dot/dash pattern for a symbol, falling back to
// FallbackPattern. Space has no pattern and returns "".
func MorsePattern(s Symbol) string {
	if s.IsSpace() {
		return ""
	}
	if p, ok := morseTable[s.Char()]; ok {
		return p
	}
	return FallbackPattern
}

// HasMorse reports whether the symbol has its own table entry.
func HasMorse(s Symbol) bool {
	_, ok := morseTable[s.Char()]
	return ok
}

// MorsePulse is one timed segment of a Morse transmission.
type MorsePulse struct {
	WavelengthNM float64 `json:"wavelength_nm" yaml:"wavelength_nm"`
	DurationMS   int     `json:"duration_ms" yaml:"duration_ms"`
	Symbol       string  `json:"symbol" yaml:"symbol"`
	MorseToken   string  `json:"morse_token" yaml:"morse_token"`
	IsGap        bool    `json:"is_gap" yaml:"is_gap"`
	StartTimeMS  int     `json:"start_time_ms" yaml:"start_time_ms"`
	Color        string  `json:"color" yaml:"color"`
}

// End returns the time at which the pulse finishes.
func (p MorsePulse) End() int {
	return p.StartTimeMS + p.DurationMS
}

// MorseSequence renders symbols as a time-ordered pulse train.
//
// A space becomes a single word gap at QuantumWavelength whatever the value
// of quantum; non-space symbols are unaffected by it, so the flag only
// exists to mirror LightSequence. Character gaps are never emitted before a
// space or after the final symbol.
func MorseSequence(symbols Symbols, quantum bool) []MorsePulse {
	return ShadedMorseSequence(symbols, quantum, DefaultShade)
}

// ShadedMorseSequence is MorseSequence with lit pulses coloured in the given
// shade. Gaps and word gaps are unaffected.
func ShadedMorseSequence(symbols Symbols, quantum bool, shade Shade) []MorsePulse {
	pulses := make([]MorsePulse, 0, len(symbols)*8)
	clock := 0
	emit := func(p MorsePulse) {
		p.StartTimeMS = clock
		clock += p.DurationMS
		pulses = append(pulses, p)
	}

	for i, s := range symbols {
		if s.IsSpace() {
			emit(MorsePulse{
				WavelengthNM: QuantumWavelength,
				DurationMS:   WordGap,
				Symbol:       s.String(),
				IsGap:        true,
				Color:        QuantumColor,
			})
			continue
		}

		beam := ShadedBeam(s, quantum, shade)
		pattern := MorsePattern(s)
		for j := 0; j < len(pattern); j++ {
			if j > 0 {
				emit(gapPulse(s, IntraCharGap))
			}
			d := DotDuration
			if pattern[j] == '-' {
				d = DashDuration
			}
			emit(MorsePulse{
				WavelengthNM: beam.WavelengthNM,
				DurationMS:   d,
				Symbol:       beam.Symbol,
				MorseToken:   pattern[j : j+1],
				Color:        beam.Color,
			})
		}

		if i+1 < len(symbols) && !symbols[i+1].IsSpace() {
			emit(gapPulse(s, CharGap))
		}
	}

	return pulses
}

func gapPulse(s Symbol, d int) MorsePulse {
	return MorsePulse{
		DurationMS: d,
		Symbol:     s.String(),
		IsGap:      true,
		Color:      GapColor,
	}
}

// MorseStats summarises a pulse train.
type MorseStats struct {
	TotalDurationMS   int     `json:"total_duration_ms" yaml:"total_duration_ms"`
	PulseCount        int     `json:"pulse_count" yaml:"pulse_count"`
	TotalPulses       int     `json:"total_pulses" yaml:"total_pulses"`
	UniqueWavelengths int     `json:"unique_wavelengths" yaml:"unique_wavelengths"`
	CharacterCount    int     `json:"character_count" yaml:"character_count"`
	TransmissionRate  float64 `json:"transmission_rate_cps" yaml:"transmission_rate_cps"`
}

// Stats computes the derived statistics of a pulse train. characters is the
// input length in code units; the rate is characters per second and zero
// for an empty train.
func Stats(pulses []MorsePulse, characters int) MorseStats {
	st := MorseStats{
		TotalPulses:    len(pulses),
		CharacterCount: characters,
	}
	if len(pulses) > 0 {
		st.TotalDurationMS = pulses[len(pulses)-1].End()
	}

	seen := make(map[float64]struct{})
	for _, p := range pulses {
		if !p.IsGap {
			st.PulseCount++
		}
		if p.WavelengthNM != 0 {
			seen[p.WavelengthNM] = struct{}{}
		}
	}
	st.UniqueWavelengths = len(seen)

	if st.TotalDurationMS > 0 {
		st.TransmissionRate = float64(characters) / (float64(st.TotalDurationMS) / 1000)
	}
	return st
}
