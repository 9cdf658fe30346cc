package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jusunglee/jamoro/internal/db/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(repo, log, nil).Handler()
}

func postRomanize(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/romanize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRomanizeEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	rec := postRomanize(t, handler, `{"text":"좋아요."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Roman         string `json:"roman"`
		AppliedHangul string `json:"applied_hangul"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "johayo.", resp.Roman)
	assert.Equal(t, "조아요.", resp.AppliedHangul)
}

func TestRomanizeEndpointRejectsBadInput(t *testing.T) {
	handler := newTestHandler(t)

	assert.Equal(t, http.StatusBadRequest, postRomanize(t, handler, `{`).Code)
	assert.Equal(t, http.StatusBadRequest, postRomanize(t, handler, `{"text":""}`).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, postRomanize(t, handler, `{"text":"없어"}`).Code)
}

func TestHistoryEndpoints(t *testing.T) {
	handler := newTestHandler(t)

	require.Equal(t, http.StatusOK, postRomanize(t, handler, `{"text":"합니다"}`).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Data []struct {
			ID           int64  `json:"id"`
			Input        string `json:"input"`
			AppliedRoman string `json:"applied_roman"`
		} `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, int64(1), list.Pagination.Total)
	assert.Equal(t, "합니다", list.Data[0].Input)
	assert.Equal(t, "hamnida", list.Data[0].AppliedRoman)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/history/999", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
