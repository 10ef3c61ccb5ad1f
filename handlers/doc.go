// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the LUXBIN API.

# Handler Types

  - TranslateHandler: light and Morse encoding, service descriptions, alphabet table
  - TransmissionHandler: read access to the transmission log

Handlers are created via constructor functions. Collaborators are small
interfaces so tests can substitute fakes:

	translate := handlers.NewTranslateHandler(store, em, tr, cfg)
	log := handlers.NewTransmissionHandler(store, cfg)

Any of store, em and tr may be nil; the matching feature is then skipped.

# Encoding

	POST /translate       → Translate (light beams)
	POST /translate-morse → TranslateMorse (timed pulses)
	GET  /translate       → DescribeTranslate
	GET  /translate-morse → DescribeTranslateMorse
	GET  /alphabet        → Alphabet

The request body is {"text": string, "enable_quantum": bool, "target_language": string}.
A missing, null or non-string text is rejected with 400 before encoding.
The empty string is valid and yields an empty sequence.

When target_language is set the text is translated first; 503 if no
translator is configured, 502 if the translation call fails.

# Side Effects

Each successful encoding is recorded and queued for the light emitter.
Neither can fail the request: errors are logged and the encoding is still
returned. transmission_id is present only when one of them succeeded.

# Transmission Log

	GET /transmissions?limit=N → List (newest first)
	GET /transmissions/{id}    → Get

Both require the X-API-Key header when an API key is configured.
Hashed client IPs are never exposed.
*/
package handlers
