// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides API key checks and privacy helpers.

# API Keys

The transmission log endpoints are guarded by a single shared key:

	key := auth.RequestAPIKey(r) // X-API-Key, or Authorization: Bearer <key>
	err := auth.ValidateAPIKey(key, cfg.APIKey)

Comparison is constant time. When no key is configured the check passes,
so a local deployment works without setup.

# IP Hashing

Client addresses are never stored in the clear:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256. Handlers skip the
hash entirely when no salt is configured.
*/
package auth
