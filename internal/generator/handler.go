package generator

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/studyloop/backend/internal/models"
)

type Handler struct {
	generator    *Generator
	availability *Availability
}

func NewHandler(gen *Generator, availability *Availability) *Handler {
	return &Handler{generator: gen, availability: availability}
}

type GenerateQuizRequest struct {
	Topic         string `json:"topic"`
	Subject       string `json:"subject"`
	Notes         string `json:"notes"`
	QuestionCount int    `json:"questionCount"`
}

type GenerateQuizResponse struct {
	Topic     string              `json:"topic"`
	Subject   string              `json:"subject"`
	Questions []GeneratedQuestion `json:"questions"`
}

// GenerateQuiz builds a diagnostic quiz from study notes. Grading happens
// client-side; the graded result comes back through the diagnostics
// submission endpoint.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if _, ok := r.Context().Value("user_id").(int64); !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Topic == "" || req.Subject == "" || strings.TrimSpace(req.Notes) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "topic, subject, and notes are required"})
		return
	}
	if req.QuestionCount <= 0 || req.QuestionCount > 10 {
		req.QuestionCount = 5
	}

	if !h.availability.Reachable() {
		writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Quiz generation is temporarily unavailable"})
		return
	}

	quiz, _, err := h.generator.GenerateQuiz(r.Context(), req.Topic, req.Subject, req.Notes, req.QuestionCount)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			// Model produced unusable output; the endpoint itself is up.
			writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Generated quiz failed validation"})
			return
		}
		h.availability.Mark(false)
		writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Quiz generation failed"})
		return
	}
	h.availability.Mark(true)

	writeJSON(w, http.StatusOK, GenerateQuizResponse{
		Topic:     req.Topic,
		Subject:   req.Subject,
		Questions: quiz.Questions,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
