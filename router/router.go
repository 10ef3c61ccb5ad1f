// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/luxbin/cliparse"
	"github.com/danielhkuo/luxbin/db"
	"github.com/danielhkuo/luxbin/handlers"
	"github.com/danielhkuo/luxbin/middleware"
	"github.com/danielhkuo/luxbin/translator"
)

// Banner is served at GET /
const Banner = "LUXBIN Light Language API v1"

// Deps are the optional collaborators of the handlers. Leave a field nil
// to disable the feature behind it.
type Deps struct {
	Store      *db.Store
	Emitter    handlers.Emitter
	Translator translator.Translator
}

func NewRouter(deps Deps, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// A nil *db.Store must not reach the handlers as a non-nil interface
	var recorder handlers.TransmissionRecorder
	if deps.Store != nil {
		recorder = deps.Store
	}

	// Initialize handlers
	translateHandler := handlers.NewTranslateHandler(recorder, deps.Emitter, deps.Translator, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Encoding
	mux.HandleFunc("POST /translate", middleware.WithLogging(translateHandler.Translate))
	mux.HandleFunc("GET /translate", middleware.WithLogging(translateHandler.DescribeTranslate))
	mux.HandleFunc("POST /translate-morse", middleware.WithLogging(translateHandler.TranslateMorse))
	mux.HandleFunc("GET /translate-morse", middleware.WithLogging(translateHandler.DescribeTranslateMorse))
	mux.HandleFunc("GET /alphabet", middleware.WithLogging(translateHandler.Alphabet))

	// Transmission log (requires X-API-Key when configured)
	list, get := logDisabled, logDisabled
	if deps.Store != nil {
		transmissionHandler := handlers.NewTransmissionHandler(deps.Store, cfg)
		list, get = transmissionHandler.List, transmissionHandler.Get
	}
	mux.HandleFunc("GET /transmissions", middleware.WithLogging(list))
	mux.HandleFunc("GET /transmissions/{id}", middleware.WithLogging(get))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return mux
}

func logDisabled(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusServiceUnavailable, "transmission log is disabled")
}
