// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/luxbin/luxbin"
	"github.com/danielhkuo/luxbin/models"
)

var morseCmd = &cobra.Command{
	Use:   "morse [text...]",
	Short: "Encode text as Morse-timed light pulses",
	Long: `Encode text as on/off light pulses, each symbol flashing its Morse
pattern at its own wavelength. Spaces become a 35 ms word gap at 637 nm.

Timing: dot 5 ms, dash 15 ms, intra-character gap 5 ms,
character gap 15 ms, word gap 35 ms.`,
	RunE: runMorse,
}

func runMorse(cmd *cobra.Command, args []string) error {
	symbols, characters, err := readSymbols(cmd, args)
	if err != nil {
		return err
	}

	shade := requestedShade()
	pulses := luxbin.ShadedMorseSequence(symbols, quantum, colours(shade))
	resp := models.TranslateMorseResponse{
		LuxbinRepresentation: symbols.String(),
		PulseSequence:        pulses,
		Statistics:           luxbin.Stats(pulses, characters),
		Shade:                shade,
	}

	return render(cmd.OutOrStdout(), resp, func(w io.Writer) {
		st := resp.Statistics
		fmt.Fprintf(w, "luxbin:   %q\n", resp.LuxbinRepresentation)
		fmt.Fprintf(w, "pulses:   %d lit / %d total\n", st.PulseCount, st.TotalPulses)
		fmt.Fprintf(w, "duration: %d ms\n", st.TotalDurationMS)
		fmt.Fprintf(w, "rate:     %.2f chars/s\n", st.TransmissionRate)
		for _, p := range pulses {
			token := p.MorseToken
			if p.IsGap {
				token = "gap"
			}
			fmt.Fprintf(w, "  %5d ms  %-4q %-3s %6.1f nm  %d ms\n",
				p.StartTimeMS, p.Symbol, token, p.WavelengthNM, p.DurationMS)
		}
	})
}
