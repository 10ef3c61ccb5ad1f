// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package luxbin

// SymbolInfo describes one alphabet symbol outside quantum mode.
type SymbolInfo struct {
	Index        int     `json:"index" yaml:"index"`
	Symbol       string  `json:"symbol" yaml:"symbol"`
	WavelengthNM float64 `json:"wavelength_nm" yaml:"wavelength_nm"`
	Color        string  `json:"color" yaml:"color"`
	Morse        string  `json:"morse" yaml:"morse"`
	MorseDefined bool    `json:"morse_defined" yaml:"morse_defined"`
}

// Table returns the full alphabet in index order.
func Table() []SymbolInfo {
	out := make([]SymbolInfo, AlphabetSize)
	for i := range out {
		s := Symbol(i)
		nm := Wavelength(s)
		out[i] = SymbolInfo{
			Index:        i,
			Symbol:       s.String(),
			WavelengthNM: nm,
			Color:        Color(Hue(nm)),
			Morse:        MorsePattern(s),
			MorseDefined: HasMorse(s),
		}
	}
	return out
}
