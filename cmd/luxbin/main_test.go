// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/luxbin/luxbin"
	"github.com/danielhkuo/luxbin/models"
)

// execute runs the root command with fresh global flags
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	outputFormat = formatText
	quantum = true
	rawSymbols = false
	partOfSpeech = ""
	tense = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeCmd_Text(t *testing.T) {
	out, err := execute(t, "", "encode", "HI")
	require.NoError(t, err)

	assert.Contains(t, out, `luxbin:   "SE "`)
	assert.Contains(t, out, "beams:    3")
	assert.Contains(t, out, "duration: 15 ms")
	assert.Contains(t, out, "637.0 nm")
	assert.Contains(t, out, "quantum")
}

func TestEncodeCmd_JSON(t *testing.T) {
	out, err := execute(t, "", "encode", "--quantum=false", "-f", "json", "HI")
	require.NoError(t, err)

	var resp models.TranslateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "SE ", resp.LuxbinRepresentation)
	require.Len(t, resp.LightSequence, 3)
	assert.Equal(t, luxbin.Wavelength(luxbin.SpaceIndex), resp.LightSequence[2].WavelengthNM)
	assert.Equal(t, 0.015, resp.TotalDurationSeconds)
}

func TestEncodeCmd_YAML(t *testing.T) {
	out, err := execute(t, "", "encode", "-f", "yaml", "A")
	require.NoError(t, err)

	var resp models.TranslateResponse
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "QQ", resp.LuxbinRepresentation)
	require.Len(t, resp.LightSequence, 2)
	want := luxbin.Beam(luxbin.EncodeSymbols("A")[0], true)
	assert.Equal(t, want.Symbol, resp.LightSequence[0].Symbol)
	assert.Equal(t, want.WavelengthNM, resp.LightSequence[0].WavelengthNM)
	assert.Equal(t, want.Color, resp.LightSequence[0].Color)
	assert.Equal(t, want.DurationMS, resp.LightSequence[0].DurationMS)
}

func TestEncodeCmd_Grammar(t *testing.T) {
	out, err := execute(t, "", "encode", "--quantum=false", "--pos", "Verb", "--tense", "Past", "-f", "json", "HI")
	require.NoError(t, err)

	var resp models.TranslateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Shade)
	assert.Equal(t, luxbin.Shade{Saturation: 75, Lightness: 40}, *resp.Shade)
	for _, b := range resp.LightSequence {
		assert.True(t, strings.HasSuffix(b.Color, ", 75%, 40%)"), b.Color)
	}

	// Unknown names fall back to 100/70
	out, err = execute(t, "", "encode", "--pos", "Gerund", "--tense", "Aorist", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "shade:    100% saturation, 70% lightness")
	assert.Contains(t, out, "100%, 70%)")
}

func TestMorseCmd_Grammar(t *testing.T) {
	out, err := execute(t, "", "morse", "--tense", "Future", "-f", "yaml", "A")
	require.NoError(t, err)

	var resp models.TranslateMorseResponse
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Shade)
	assert.Equal(t, luxbin.Shade{Saturation: 100, Lightness: 85}, *resp.Shade)
	assert.Equal(t, 145, resp.Statistics.TotalDurationMS)
}

func TestEncodeCmd_Stdin(t *testing.T) {
	out, err := execute(t, "Hello World", "encode", "-f", "json")
	require.NoError(t, err)

	var resp models.TranslateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "SGV(1G~6V^`@1GQ", resp.LuxbinRepresentation)
}

func TestEncodeCmd_JoinsArgs(t *testing.T) {
	out, err := execute(t, "", "encode", "-f", "json", "Hello", "World")
	require.NoError(t, err)

	var resp models.TranslateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "SGV(1G~6V^`@1GQ", resp.LuxbinRepresentation)
}

func TestEncodeCmd_Symbols(t *testing.T) {
	out, err := execute(t, "", "encode", "--symbols", "-f", "json", "SE ")
	require.NoError(t, err)

	var resp models.TranslateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "SE ", resp.LuxbinRepresentation)
	assert.Len(t, resp.LightSequence, 3)

	_, err = execute(t, "", "encode", "--symbols", "se")
	assert.ErrorIs(t, err, luxbin.ErrUnknownSymbol)
}

func TestMorseCmd(t *testing.T) {
	out, err := execute(t, "", "morse", "-f", "json", "HI")
	require.NoError(t, err)

	var resp models.TranslateMorseResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, luxbin.MorseStats{
		TotalDurationMS:   80,
		PulseCount:        4,
		TotalPulses:       8,
		UniqueWavelengths: 3,
		CharacterCount:    2,
		TransmissionRate:  25,
	}, resp.Statistics)
}

func TestMorseCmd_Text(t *testing.T) {
	out, err := execute(t, "", "morse", "A")
	require.NoError(t, err)

	assert.Contains(t, out, `luxbin:   "QQ"`)
	assert.Contains(t, out, "duration: 145 ms")
	assert.Contains(t, out, "gap")
}

func TestAlphabetCmd(t *testing.T) {
	out, err := execute(t, "", "alphabet", "-f", "json")
	require.NoError(t, err)

	var resp models.AlphabetResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, luxbin.AlphabetSize, resp.Size)
	assert.Len(t, resp.Symbols, luxbin.AlphabetSize)
	assert.Equal(t, luxbin.QuantumWavelength, resp.QuantumWavelength)

	out, err = execute(t, "", "alphabet")
	require.NoError(t, err)
	assert.Equal(t, luxbin.AlphabetSize+1, strings.Count(out, "\n"))
	assert.Contains(t, out, "(fallback)")

	_, err = execute(t, "", "alphabet", "extra")
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "encode", "-f", "xml", "HI")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
