// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package luxbin

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	table := Table()
	require.Len(t, table, AlphabetSize)

	want := SymbolInfo{
		Index:        0,
		Symbol:       "A",
		WavelengthNM: 400,
		Color:        "hsl(0.0, 100%, 50%)",
		Morse:        ".-",
		MorseDefined: true,
	}
	if diff := cmp.Diff(want, table[0]); diff != "" {
		t.Errorf("Table()[0] mismatch (-want +got):\n%s", diff)
	}

	space := table[SpaceIndex]
	assert.Equal(t, " ", space.Symbol)
	assert.Empty(t, space.Morse)
	assert.False(t, space.MorseDefined)
	assert.Equal(t, Wavelength(SpaceIndex), space.WavelengthNM, "table shows the formula wavelength for space")

	for i, e := range table {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, string(Alphabet[i]), e.Symbol)
	}
}
