// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/luxbin/models"
	"github.com/danielhkuo/luxbin/testutil"
)

// TestFullTransmissionWorkflow tests the complete end-to-end workflow:
// 1. Encode text as light
// 2. Encode text as Morse
// 3. List the transmission log
// 4. Fetch each entry by ID
// 5. Verify emitted sequences match
func TestFullTransmissionWorkflow(t *testing.T) {
	store := testutil.SetupTestStore(t)
	em := &testutil.FakeEmitter{}
	cfg := testutil.GetTestConfig()
	translateHandler := NewTranslateHandler(store, em, nil, cfg)
	transmissionHandler := NewTransmissionHandler(store, cfg)
	apiKey := map[string]string{"X-API-Key": testutil.TestAPIKey}

	// Step 1: Light encoding
	req := testutil.MakeRequest("POST", "/translate", map[string]interface{}{"text": "Hello World"}, nil)
	w := httptest.NewRecorder()
	translateHandler.Translate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 1 - Translate failed: %d - %s", w.Code, w.Body.String())
	}

	var lightResp models.TranslateResponse
	json.NewDecoder(w.Body).Decode(&lightResp)
	if lightResp.LuxbinRepresentation != "SGV(1G~6V^`@1GQ" {
		t.Fatalf("Step 1 - Unexpected representation %q", lightResp.LuxbinRepresentation)
	}
	t.Logf("Step 1 - Light transmission: %s", lightResp.TransmissionID)

	// Step 2: Morse encoding
	req = testutil.MakeRequest("POST", "/translate-morse", map[string]interface{}{"text": "HI", "enable_quantum": false}, nil)
	w = httptest.NewRecorder()
	translateHandler.TranslateMorse(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - TranslateMorse failed: %d - %s", w.Code, w.Body.String())
	}

	var morseResp models.TranslateMorseResponse
	json.NewDecoder(w.Body).Decode(&morseResp)
	if morseResp.Statistics.TotalDurationMS != 80 {
		t.Fatalf("Step 2 - Expected 80ms, got %d", morseResp.Statistics.TotalDurationMS)
	}
	t.Logf("Step 2 - Morse transmission: %s", morseResp.TransmissionID)

	// Step 3: List
	req = testutil.MakeRequest("GET", "/transmissions", nil, apiKey)
	w = httptest.NewRecorder()
	transmissionHandler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - List failed: %d - %s", w.Code, w.Body.String())
	}

	var listResp models.TransmissionListResponse
	json.NewDecoder(w.Body).Decode(&listResp)
	if listResp.Count != 2 {
		t.Fatalf("Step 3 - Expected 2 transmissions, got %d", listResp.Count)
	}

	// Step 4: Fetch each
	want := map[string]struct {
		mode     string
		rep      string
		duration int
	}{
		lightResp.TransmissionID: {models.ModeLight, lightResp.LuxbinRepresentation, 75},
		morseResp.TransmissionID: {models.ModeMorse, morseResp.LuxbinRepresentation, 80},
	}
	for id, exp := range want {
		req = testutil.MakeRequest("GET", "/transmissions/"+id, nil, apiKey)
		req.SetPathValue("id", id)
		w = httptest.NewRecorder()
		transmissionHandler.Get(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Step 4 - Get %s failed: %d - %s", id, w.Code, w.Body.String())
		}

		var got models.TransmissionView
		json.NewDecoder(w.Body).Decode(&got)
		if got.Mode != exp.mode || got.Representation != exp.rep || got.TotalDurationMS != exp.duration {
			t.Errorf("Step 4 - %s: got %s/%q/%d, want %s/%q/%d", id,
				got.Mode, got.Representation, got.TotalDurationMS, exp.mode, exp.rep, exp.duration)
		}
	}

	// Step 5: Emitted sequences
	light, morse := em.Counts()
	if light != 1 || morse != 1 {
		t.Fatalf("Step 5 - Expected one light and one morse message, got %d/%d", light, morse)
	}
	if em.Light[0].TransmissionID != lightResp.TransmissionID || em.Morse[0].TransmissionID != morseResp.TransmissionID {
		t.Error("Step 5 - Emitted ids do not match transmissions")
	}

	t.Log("Full transmission workflow completed successfully!")
}
