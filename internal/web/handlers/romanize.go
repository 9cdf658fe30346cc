package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/jusunglee/jamoro/internal/db"
	"github.com/jusunglee/jamoro/internal/hangul"
	"github.com/jusunglee/jamoro/internal/romanize"
)

// Inputs longer than this are rejected before parsing.
const maxInputRunes = 1000

type RomanizeHandler struct {
	repo db.Repository // nil disables history persistence
	log  *slog.Logger
}

func NewRomanizeHandler(repo db.Repository, log *slog.Logger) *RomanizeHandler {
	return &RomanizeHandler{repo: repo, log: log}
}

type romanizeRequest struct {
	Text string `json:"text"`
}

func (h *RomanizeHandler) Romanize(w http.ResponseWriter, r *http.Request) {
	var req romanizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if utf8.RuneCountInString(req.Text) > maxInputRunes {
		writeError(w, http.StatusBadRequest, "text too long")
		return
	}

	result, err := romanize.Romanize(req.Text)
	if err != nil {
		if errors.Is(err, hangul.ErrUnknownRomanization) {
			// A sound cluster with no syllable to land in; the pass
			// aborts rather than emit a corrupted sentence.
			h.log.WarnContext(r.Context(), "rule pass aborted", "text", req.Text, "error", err)
			writeError(w, http.StatusUnprocessableEntity, "text has no valid rule-applied form")
			return
		}
		h.log.ErrorContext(r.Context(), "romanizing", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if h.repo != nil {
		_, err := h.repo.SaveRomanization(r.Context(), db.SaveRomanizationParams{
			Input:         result.Input,
			Roman:         result.Roman,
			Jamo:          result.Jamo,
			Hangul:        result.Hangul,
			AppliedRoman:  result.AppliedRoman,
			AppliedJamo:   result.AppliedJamo,
			AppliedHangul: result.AppliedHangul,
		})
		if err != nil {
			// History is best-effort; the rendering already succeeded.
			h.log.ErrorContext(r.Context(), "saving romanization", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
