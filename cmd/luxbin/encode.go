// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/luxbin/luxbin"
	"github.com/danielhkuo/luxbin/models"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Encode text as a sequence of light beams",
	Long: `Encode text as one 5 ms light beam per LUXBIN symbol.

Examples:
  luxbin encode "Hello World"
  echo -n HI | luxbin encode --quantum=false -f json
  luxbin encode --pos Verb --tense Past "run"`,
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	symbols, _, err := readSymbols(cmd, args)
	if err != nil {
		return err
	}

	shade := requestedShade()
	beams := luxbin.ShadedLightSequence(symbols, quantum, colours(shade))
	resp := models.TranslateResponse{
		LuxbinRepresentation: symbols.String(),
		LightSequence:        beams,
		TotalDurationSeconds: float64(luxbin.TotalDuration(beams)) / 1000,
		Shade:                shade,
	}

	return render(cmd.OutOrStdout(), resp, func(w io.Writer) {
		fmt.Fprintf(w, "luxbin:   %q\n", resp.LuxbinRepresentation)
		fmt.Fprintf(w, "beams:    %d\n", len(beams))
		fmt.Fprintf(w, "duration: %d ms\n", luxbin.TotalDuration(beams))
		if shade != nil {
			fmt.Fprintf(w, "shade:    %d%% saturation, %d%% lightness\n", shade.Saturation, shade.Lightness)
		}
		for _, b := range beams {
			marker := ""
			if b.Quantum {
				marker = "  quantum"
			}
			fmt.Fprintf(w, "  %-4q %6.1f nm  %-22s %s  %d ms%s\n",
				b.Symbol, b.WavelengthNM, b.Color, b.RGB.Hex(), b.DurationMS, marker)
		}
	})
}

// readSymbols encodes the joined arguments, or stdin when there are none.
// With --symbols the input is parsed as a LUXBIN representation instead.
func readSymbols(cmd *cobra.Command, args []string) (luxbin.Symbols, int, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(b)
	}

	if rawSymbols {
		symbols, err := luxbin.ParseSymbols(text)
		if err != nil {
			return nil, 0, err
		}
		return symbols, len(symbols), nil
	}
	return luxbin.EncodeSymbols(text), luxbin.CharacterCount(text), nil
}
