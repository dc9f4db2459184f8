package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priceserver/catalog"
)

type stubRunner struct {
	stats RunStats
	err   error
	calls int
}

func (r *stubRunner) Run(_ context.Context) (RunStats, error) {
	r.calls++
	return r.stats, r.err
}

type stubSource struct {
	rows []catalog.Listing
	err  error
}

func (s *stubSource) Catalog() ([]catalog.Listing, error) {
	return s.rows, s.err
}

func newTestServer(runner *stubRunner, source *stubSource) *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(runner, source, 6, log)
}

func TestHealth(t *testing.T) {
	s := newTestServer(&stubRunner{}, &stubSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRefresh(t *testing.T) {
	runner := &stubRunner{stats: RunStats{FilesProcessed: 2, RowsExported: 40}}
	s := newTestServer(runner, &stubSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, runner.calls)

	var stats RunStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.FilesProcessed)
	assert.Equal(t, 40, stats.RowsExported)
}

// Второй запуск подряд упирается в ограничитель частоты.
func TestRefreshRateLimited(t *testing.T) {
	runner := &stubRunner{}
	s := newTestServer(runner, &stubSource{})

	w1 := httptest.NewRecorder()
	s.Router().ServeHTTP(w1, httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil))
	require.Equal(t, http.StatusOK, w1.Code)

	w2 := httptest.NewRecorder()
	s.Router().ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil))
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	assert.Equal(t, 1, runner.calls)
}

func TestRefreshFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("почта недоступна")}
	s := newTestServer(runner, &stubSource{})

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCatalog(t *testing.T) {
	l := catalog.Listing{Supplier: "a.xlsx", Brand: "CHANEL", Aroma: "no5", Price: 95}
	l.Reassemble()
	s := newTestServer(&stubRunner{}, &stubSource{rows: []catalog.Listing{l}})

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total int               `json:"total"`
		Items []catalog.Listing `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "CHANEL", body.Items[0].Brand)
}

// Клиентский X-Request-ID проходит насквозь.
func TestRequestIDPassthrough(t *testing.T) {
	s := newTestServer(&stubRunner{}, &stubSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "my-id")
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, "my-id", w.Header().Get("X-Request-ID"))
}
