// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package luxbin

import (
	"errors"
	"fmt"
	"strings"
)

// AlphabetSize is the number of symbols in the LUXBIN alphabet.
const AlphabetSize = 70

// Alphabet lists every symbol in index order: letters, digits, space,
// then 33 punctuation characters ending with slash and newline.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,!?;:-()[]{}@#$%^&*+=_~`<>\"'|\\/\n"

// SpaceIndex is the alphabet position of the space symbol.
const SpaceIndex Symbol = 36

var ErrUnknownSymbol = errors.New("symbol not in LUXBIN alphabet")

// symbolIndex maps a byte to its alphabet position, -1 when absent
var symbolIndex = func() [256]int16 {
	var idx [256]int16
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		idx[Alphabet[i]] = int16(i)
	}
	return idx
}()

// Symbol is an alphabet index in [0, AlphabetSize).
type Symbol uint8

// Lookup returns the symbol for an alphabet character.
func Lookup(c byte) (Symbol, bool) {
	i := symbolIndex[c]
	if i < 0 {
		return 0, false
	}
	return Symbol(i), true
}

// Char returns the alphabet character for the symbol.
func (s Symbol) Char() byte {
	return Alphabet[s]
}

func (s Symbol) String() string {
	return string(Alphabet[s])
}

// IsSpace reports whether the symbol is the word separator.
func (s Symbol) IsSpace() bool {
	return s == SpaceIndex
}

// Symbols is an ordered symbol sequence produced by EncodeSymbols.
type Symbols []Symbol

// String renders the sequence as its LUXBIN representation.
func (s Symbols) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, sym := range s {
		b.WriteByte(sym.Char())
	}
	return b.String()
}

// ParseSymbols converts a LUXBIN representation back into symbols.
func ParseSymbols(rep string) (Symbols, error) {
	out := make(Symbols, 0, len(rep))
	for i := 0; i < len(rep); i++ {
		sym, ok := Lookup(rep[i])
		if !ok {
			return nil, fmt.Errorf("position %d (%q): %w", i, rep[i], ErrUnknownSymbol)
		}
		out = append(out, sym)
	}
	return out, nil
}
