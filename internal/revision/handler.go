package revision

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/studyloop/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// ── Diagnostics ─────────────────────────────────────────

func (h *Handler) SubmitDiagnostic(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SubmitDiagnosticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.SubmitDiagnostic(r.Context(), userID, req)
	if err != nil {
		writeError(w, err, "Failed to submit diagnostic")
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ── Revisions ───────────────────────────────────────────

func (h *Handler) DueRevisions(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	asOf := time.Now()
	if v := r.URL.Query().Get("asOf"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "asOf must be RFC3339"})
			return
		}
		asOf = parsed
	}

	revisions, err := h.service.DueRevisionsFor(r.Context(), userID, asOf)
	if err != nil {
		writeError(w, err, "Failed to list due revisions")
		return
	}

	writeJSON(w, http.StatusOK, models.DueRevisionsResponse{Revisions: revisions, AsOf: asOf})
}

func (h *Handler) CompleteRevision(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	revisionID := mux.Vars(r)["id"]

	var req models.CompleteRevisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.CompleteRevision(r.Context(), userID, revisionID, req.RecallScore)
	if err != nil {
		writeError(w, err, "Failed to complete revision")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ── Dashboard ───────────────────────────────────────────

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	stats, err := h.service.DashboardStats(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Failed to compute dashboard stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ── Helpers ─────────────────────────────────────────────

func writeError(w http.ResponseWriter, err error, fallback string) {
	var vErr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Revision not found"})
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: vErr.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: fallback})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
