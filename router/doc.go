// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the LUXBIN API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Deps{Store: store, Emitter: em}, cfg)

# Endpoints

Health:

	GET /health

Encoding (public):

	POST /translate       - Text to light beams
	GET  /translate       - Service description
	POST /translate-morse - Text to Morse light pulses
	GET  /translate-morse - Service description
	GET  /alphabet        - Symbol table with wavelengths and Morse patterns

Transmission log (requires X-API-Key when configured):

	GET /transmissions      - Recent transmissions
	GET /transmissions/{id} - One transmission

Without a store the log routes answer 503 and encodings are not recorded.
*/
package router
