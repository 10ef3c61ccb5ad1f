// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package luxbin

import "unicode/utf16"

// EncodeSymbols reduces text to a LUXBIN symbol sequence.
//
// Each UTF-16 code unit contributes its low 8 bits (MSB first). The bit
// stream is cut into 6-bit groups, the last group zero-padded on the right,
// and every group is taken modulo AlphabetSize. The result always has
// ceil(8*n/6) symbols for n code units. The reduction is lossy.
func EncodeSymbols(text string) Symbols {
	units := utf16.Encode([]rune(text))
	out := make(Symbols, 0, (len(units)*8+5)/6)

	var acc uint32
	var bits uint
	for _, u := range units {
		acc = acc<<8 | uint32(u&0xff)
		bits += 8
		for bits >= 6 {
			bits -= 6
			group := (acc >> bits) & 0x3f
			out = append(out, Symbol(group%AlphabetSize))
			acc &= 1<<bits - 1
		}
	}
	if bits > 0 {
		group := (acc << (6 - bits)) & 0x3f
		out = append(out, Symbol(group%AlphabetSize))
	}

	return out
}

// CharacterCount returns the number of UTF-16 code units in text, the
// unit EncodeSymbols consumes.
func CharacterCount(text string) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}
