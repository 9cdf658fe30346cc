package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jusunglee/jamoro/internal/db"
)

type HistoryHandler struct {
	repo db.Repository
	log  *slog.Logger
}

func NewHistoryHandler(repo db.Repository, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, log: log}
}

type historyResponse struct {
	ID            int64  `json:"id"`
	Input         string `json:"input"`
	Roman         string `json:"roman"`
	Jamo          string `json:"jamo"`
	Hangul        string `json:"hangul"`
	AppliedRoman  string `json:"applied_roman"`
	AppliedJamo   string `json:"applied_jamo"`
	AppliedHangul string `json:"applied_hangul"`
	CreatedAt     string `json:"created_at"`
}

type paginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type listResponse struct {
	Data       []historyResponse `json:"data"`
	Pagination paginationMeta    `json:"pagination"`
}

func toHistoryResponse(rec db.Romanization) historyResponse {
	return historyResponse{
		ID:            rec.ID,
		Input:         rec.Input,
		Roman:         rec.Roman,
		Jamo:          rec.Jamo,
		Hangul:        rec.Hangul,
		AppliedRoman:  rec.AppliedRoman,
		AppliedJamo:   rec.AppliedJamo,
		AppliedHangul: rec.AppliedHangul,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
	}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 25
	}
	offset := (page - 1) * limit

	total, err := h.repo.CountRomanizations(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "counting romanizations", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	records, err := h.repo.ListRomanizations(r.Context(), db.ListRomanizationsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing romanizations", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	data := make([]historyResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, toHistoryResponse(rec))
	}

	writeJSON(w, http.StatusOK, listResponse{
		Data: data,
		Pagination: paginationMeta{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	rec, err := h.repo.GetRomanization(r.Context(), id)
	if err != nil {
		if db.IsNoRows(err) {
			writeError(w, http.StatusNotFound, "romanization not found")
			return
		}
		h.log.ErrorContext(r.Context(), "getting romanization", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponse(rec))
}
