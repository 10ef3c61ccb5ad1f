// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package luxbin implements the LUXBIN text-to-light encoder.

# Symbol Reduction

EncodeSymbols turns text into a sequence over the fixed 70-symbol alphabet:

	symbols := luxbin.EncodeSymbols("HI") // "SE "

Every UTF-16 code unit is reduced to 8 bits, the bit stream is regrouped
into 6-bit values (last group zero-padded) and each value is taken modulo
70. The transform is lossy and has no inverse.

# Light Beams

LightSequence maps each symbol to a beam:

	beams := luxbin.LightSequence(symbols, true)

Wavelength is 400 + index/70 * 300 nm and the colour is an HSL descriptor
whose hue spans the same range over 0-360 degrees. Every beam lasts 5 ms.
With quantum mode enabled a space is emitted at 637 nm instead.

# Morse Pulses

MorseSequence renders symbols as timed dot/dash pulses with explicit gaps:

	pulses := luxbin.MorseSequence(symbols, true)
	stats := luxbin.Stats(pulses, luxbin.CharacterCount(text))

Timing: dot 5 ms, dash 15 ms, intra-character gap 5 ms, character gap
15 ms, word gap 35 ms. Symbols without a Morse entry use "....".

# Reference Table

Table lists every symbol with its wavelength, colour and Morse pattern.
ParseSymbols reads an existing LUXBIN representation back into symbols.

All functions are pure and safe for concurrent use.
*/
package luxbin
