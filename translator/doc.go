// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package translator pre-translates request text with a Gemini model before
// it is encoded. Requests without a target_language never reach it.
package translator
