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

var alphabetCmd = &cobra.Command{
	Use:   "alphabet",
	Short: "Print the 70-symbol alphabet with wavelengths and Morse patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := models.AlphabetResponse{
			Size:              luxbin.AlphabetSize,
			QuantumWavelength: luxbin.QuantumWavelength,
			Symbols:           luxbin.Table(),
		}

		return render(cmd.OutOrStdout(), resp, func(w io.Writer) {
			for _, e := range resp.Symbols {
				morse := e.Morse
				if !e.MorseDefined && morse != "" {
					morse += " (fallback)"
				}
				fmt.Fprintf(w, "%2d  %-4q %6.1f nm  %-22s %s\n",
					e.Index, e.Symbol, e.WavelengthNM, e.Color, morse)
			}
			fmt.Fprintf(w, "quantum marker: %.1f nm\n", resp.QuantumWavelength)
		})
	},
}
