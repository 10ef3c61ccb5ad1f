// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package luxbin

import "strings"

// Grammar shading: the hue carries the letter, saturation carries the part
// of speech and lightness carries the tense.
const (
	// DefaultPartSaturation applies to an unknown or empty part of speech.
	DefaultPartSaturation = 100
	// DefaultTenseLightness applies to an unknown or empty tense.
	DefaultTenseLightness = 70
)

// Shade is the saturation and lightness, in percent, of a beam colour.
type Shade struct {
	Saturation int `json:"saturation" yaml:"saturation"`
	Lightness  int `json:"lightness" yaml:"lightness"`
}

// DefaultShade is used when no grammar is requested.
var DefaultShade = Shade{Saturation: Saturation, Lightness: Lightness}

type grammarEntry struct {
	name  string
	value int
}

var partsOfSpeech = []grammarEntry{
	{"Noun", 100},
	{"Verb", 75},
	{"Adjective", 50},
	{"Modifier", 30},
	{"Control", 0},
}

var tenses = []grammarEntry{
	{"Present", 70},
	{"Past", 40},
	{"Future", 85},
	{"Conditional", 90},
}

func lookupGrammar(entries []grammarEntry, name string, fallback int) int {
	name = strings.TrimSpace(name)
	for _, e := range entries {
		if strings.EqualFold(e.name, name) {
			return e.value
		}
	}
	return fallback
}

func grammarNames(entries []grammarEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// PartSaturation returns the saturation for a part of speech, matched
// case-insensitively. Unknown names get DefaultPartSaturation.
func PartSaturation(partOfSpeech string) int {
	return lookupGrammar(partsOfSpeech, partOfSpeech, DefaultPartSaturation)
}

// TenseLightness returns the lightness for a tense. Unknown names get
// DefaultTenseLightness.
func TenseLightness(tense string) int {
	return lookupGrammar(tenses, tense, DefaultTenseLightness)
}

// GrammarShade combines a part of speech and a tense into a Shade.
//
//	luxbin.GrammarShade("Verb", "Past") // {75 40}
func GrammarShade(partOfSpeech, tense string) Shade {
	return Shade{
		Saturation: PartSaturation(partOfSpeech),
		Lightness:  TenseLightness(tense),
	}
}

// PartsOfSpeech lists the known parts of speech.
func PartsOfSpeech() []string { return grammarNames(partsOfSpeech) }

// Tenses lists the known tenses.
func Tenses() []string { return grammarNames(tenses) }
