// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/luxbin/auth"
	"github.com/danielhkuo/luxbin/cliparse"
	"github.com/danielhkuo/luxbin/db"
	"github.com/danielhkuo/luxbin/middleware"
	"github.com/danielhkuo/luxbin/models"
)

// DefaultListLimit applies when ?limit is absent
const DefaultListLimit = 50

// TransmissionReader reads the transmission log. *db.Store satisfies it.
type TransmissionReader interface {
	Get(ctx context.Context, id string) (models.Transmission, error)
	List(ctx context.Context, limit int) ([]models.Transmission, error)
}

type TransmissionHandler struct {
	store TransmissionReader
	cfg   cliparse.Config
}

func NewTransmissionHandler(store TransmissionReader, cfg cliparse.Config) *TransmissionHandler {
	return &TransmissionHandler{store: store, cfg: cfg}
}

// List handles GET /transmissions
func (h *TransmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	limit := DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > db.MaxListLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				"limit must be between 1 and "+strconv.Itoa(db.MaxListLimit))
			return
		}
		limit = n
	}

	list, err := h.store.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list transmissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	views := make([]models.TransmissionView, len(list))
	for i, t := range list {
		views[i] = view(t)
	}

	middleware.JSONResponse(w, http.StatusOK, models.TransmissionListResponse{
		Transmissions: views,
		Count:         len(views),
	})
}

// Get handles GET /transmissions/{id}
func (h *TransmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	t, err := h.store.Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Transmission not found")
		return
	}
	if err != nil {
		slog.Error("failed to get transmission", "transmission_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view(t))
}

func (h *TransmissionHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if err := auth.ValidateAPIKey(auth.RequestAPIKey(r), h.cfg.APIKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return false
	}
	return true
}

func view(t models.Transmission) models.TransmissionView {
	return models.TransmissionView{
		Transmission: t,
		Recorded:     humanize.Time(t.CreatedAt),
	}
}
