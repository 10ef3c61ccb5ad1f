// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/luxbin/luxbin"
	"github.com/danielhkuo/luxbin/models"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	// Global flags
	outputFormat string
	quantum      bool
	rawSymbols   bool
	partOfSpeech string
	tense        string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "luxbin",
	Short: "LUXBIN - encode text as light",
	Long: `luxbin encodes text into the LUXBIN light language offline.

Text is regrouped into 6-bit symbols from a 70-character alphabet. Each
symbol maps to a visible wavelength between 400 and 700 nm, emitted either
as a 5 ms beam or as Morse-timed light pulses.

Input is taken from the arguments, or from stdin when none are given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case formatText, formatJSON, formatYAML:
			return nil
		default:
			return fmt.Errorf("unknown format %q (want text, json or yaml)", outputFormat)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatText, "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&quantum, "quantum", "q", true, "Mark spaces with the 637 nm quantum wavelength")
	rootCmd.PersistentFlags().BoolVar(&rawSymbols, "symbols", false, "Treat input as an existing LUXBIN representation")
	rootCmd.PersistentFlags().StringVar(&partOfSpeech, "pos", "", "Part of speech shading the colour saturation ("+strings.Join(luxbin.PartsOfSpeech(), ", ")+")")
	rootCmd.PersistentFlags().StringVar(&tense, "tense", "", "Tense shading the colour lightness ("+strings.Join(luxbin.Tenses(), ", ")+")")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(morseCmd)
	rootCmd.AddCommand(alphabetCmd)
}

// requestedShade applies --pos and --tense; nil when neither is set
func requestedShade() *luxbin.Shade {
	return models.TranslateRequest{PartOfSpeech: partOfSpeech, Tense: tense}.Shade()
}

// colours resolves a requested shade against the default
func colours(shade *luxbin.Shade) luxbin.Shade {
	if shade == nil {
		return luxbin.DefaultShade
	}
	return *shade
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
