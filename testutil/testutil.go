// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/luxbin/cliparse"
	"github.com/danielhkuo/luxbin/db"
	"github.com/danielhkuo/luxbin/emitter"
	"github.com/danielhkuo/luxbin/models"
)

// TestAPIKey is the API key set by GetTestConfig
const TestAPIKey = "test-api-key"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a transmission store over SetupTestDB
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()
	return db.NewStore(SetupTestDB(t), cliparse.DatabaseSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		DatabaseType:     cliparse.DatabaseSQLite,
		DatabaseURL:      ":memory:",
		IPHashSalt:       "test-ip-salt",
		APIKey:           TestAPIKey,
		MQTTTopic:        cliparse.DefaultMQTTTopic,
		GeminiModel:      cliparse.DefaultGeminiModel,
		TranslateTimeout: time.Second,
	}
}

// CreateTestTransmission inserts a transmission and returns its ID
func CreateTestTransmission(t *testing.T, store *db.Store, id, mode string, createdAt time.Time) string {
	t.Helper()

	err := store.Record(context.Background(), models.Transmission{
		ID:              id,
		Mode:            mode,
		Quantum:         true,
		CharacterCount:  2,
		SymbolCount:     3,
		Representation:  "SE ",
		TotalDurationMS: 15,
		CreatedAt:       createdAt,
	})
	if err != nil {
		t.Fatalf("Failed to create test transmission: %v", err)
	}

	return id
}

// FakeEmitter records everything enqueued to it
type FakeEmitter struct {
	Reject bool

	mu    sync.Mutex
	Light []emitter.LightMessage
	Morse []emitter.MorseMessage
}

func (f *FakeEmitter) EnqueueLight(msg emitter.LightMessage) bool {
	if f.Reject {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Light = append(f.Light, msg)
	return true
}

func (f *FakeEmitter) EnqueueMorse(msg emitter.MorseMessage) bool {
	if f.Reject {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Morse = append(f.Morse, msg)
	return true
}

// Counts returns the number of light and morse messages enqueued
func (f *FakeEmitter) Counts() (light, morse int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Light), len(f.Morse)
}

// FakeTranslator returns a canned translation or error
type FakeTranslator struct {
	Result string
	Err    error

	mu    sync.Mutex
	Calls []string
}

func (f *FakeTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, targetLanguage+":"+text)
	f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	return f.Result, nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		case []byte:
			raw = b
		default:
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
