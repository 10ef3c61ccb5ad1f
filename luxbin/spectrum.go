// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package luxbin

import (
	"fmt"
	"math"
)

const (
	// SpeedOfLight in m/s, as used for photon frequency.
	SpeedOfLight = 3e8

	// planckEV is hc expressed in eV·nm
	planckEV = 1240.0
)

// RGB is an 8-bit red, green, blue triple.
type RGB [3]uint8

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
}

// Hex returns the colour as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2])
}

// HSLToRGB converts hue (degrees), saturation and lightness (percent).
// Channels are truncated, not rounded.
func HSLToRGB(h, s, l float64) RGB {
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{channel(r + m), channel(g + m), channel(b + m)}
}

// WavelengthToRGB approximates the perceived colour of monochromatic light.
// Wavelengths outside [380, 781) nm render black.
func WavelengthToRGB(nm float64) RGB {
	var r, g, b float64
	switch {
	case nm < 380:
		return RGB{}
	case nm < 440:
		r, g, b = -(nm-440)/(440-380), 0, 1
	case nm < 490:
		r, g, b = 0, (nm-440)/(490-440), 1
	case nm < 510:
		r, g, b = 0, 1, -(nm-510)/(510-490)
	case nm < 580:
		r, g, b = (nm-510)/(580-510), 1, 0
	case nm < 645:
		r, g, b = 1, -(nm-645)/(645-580), 0
	case nm < 781:
		r, g, b = 1, 0, 0
	default:
		return RGB{}
	}
	return RGB{channel(r), channel(g), channel(b)}
}

// FrequencyHz returns the photon frequency for a wavelength in nm.
func FrequencyHz(nm float64) float64 {
	if nm <= 0 {
		return 0
	}
	return SpeedOfLight / (nm * 1e-9)
}

// EnergyEV returns the photon energy in electronvolts for a wavelength in nm.
func EnergyEV(nm float64) float64 {
	if nm <= 0 {
		return 0
	}
	return planckEV / nm
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
