package evaluations

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/langdrift/backend/internal/confusion"
	"github.com/langdrift/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Score is the stateless scoring endpoint.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoreRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Score(req)
	if err != nil {
		writeScoringError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Analyze is the stateless per-line analysis endpoint.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoreRequest(w, r)
	if !ok {
		return
	}

	analysis, err := h.service.Analyze(req)
	if err != nil {
		writeScoringError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Response == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "response is required"})
		return
	}

	eval, err := h.service.Evaluate(req.Response, req.ExpectedLanguage, nil)
	if err != nil {
		writeScoringError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eval)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid evaluation id"})
		return
	}

	eval, err := h.service.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Evaluation not found"})
		return
	}
	writeJSON(w, http.StatusOK, eval)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	language := query.Get("language")
	if language != "" && !confusion.IsSupported(language) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid language filter"})
		return
	}
	limit := intQueryParam(query, "limit", 50)
	offset := intQueryParam(query, "offset", 0)

	evals, err := h.service.List(language, limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list evaluations"})
		return
	}
	if evals == nil {
		evals = []models.Evaluation{}
	}
	writeJSON(w, http.StatusOK, evals)
}

func decodeScoreRequest(w http.ResponseWriter, r *http.Request) (models.ScoreRequest, bool) {
	var req models.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return req, false
	}
	return req, true
}

// writeScoringError maps calculator errors onto status codes: an invalid
// language code is the caller's fault, anything else is ours.
func writeScoringError(w http.ResponseWriter, err error) {
	var invalid *confusion.InvalidLanguageError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: invalid.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Scoring failed: " + err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}
