package probe

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/langdrift/backend/internal/confusion"
	"github.com/langdrift/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req models.ProbeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Prompt == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "prompt is required"})
		return
	}

	probe, err := h.service.Run(r.Context(), req)
	if err != nil {
		var invalid *confusion.InvalidLanguageError
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: invalid.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Probe failed: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, probe)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
