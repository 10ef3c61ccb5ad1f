// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the LUXBIN API server.

LUXBIN encodes text as light: each character's bits are regrouped into
6-bit values and mapped onto a 70-symbol alphabet, and each symbol becomes
a visible-light wavelength between 400 and 700 nm. A Morse variant emits
the same symbols as timed on/off pulses.

# Starting the Server

With no configuration the server listens on 3318 and logs transmissions to
a local SQLite file:

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first.

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or none (default: sqlite)
  - DATABASE_URL (-d): Connection string
  - IP_HASH_SALT (--ip-salt): Enables hashed client IPs in the log
  - API_KEY (--api-key): Protects the transmission log endpoints
  - MQTT_BROKER (--mqtt-broker): Enables the light emitter
  - GEMINI_API_KEY: Enables target_language pre-translation

# Architecture

  - luxbin: the encoder (symbols, light beams, Morse pulses)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: API key checks and IP hashing
  - db: Connection, schema and transmission store
  - emitter: MQTT broadcast to light hardware
  - translator: Gemini pre-translation
  - cliparse: Configuration parsing

The encoder is also available offline through cmd/luxbin.

See package documentation for each component.
*/
package main
