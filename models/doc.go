// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - TranslateRequest: text, enable_quantum (default true), target_language

The text field is kept as raw JSON so handlers can reject a non-string
value separately from a missing one.

# Response Types

Types for JSON responses:

  - TranslateResponse: luxbin_representation, light_sequence, total_duration_seconds
  - TranslateMorseResponse: luxbin_representation, pulse_sequence, statistics
  - ServiceDescription: static metadata for GET /translate and GET /translate-morse
  - AlphabetResponse: the 70-symbol reference table
  - TransmissionListResponse: recent transmission log entries
  - ErrorResponse: error, message

# Domain Types

  - Transmission: one logged translation (mode, counts, representation)

# Constants

Transmission modes:

	ModeLight = "light"
	ModeMorse = "morse"
*/
package models
