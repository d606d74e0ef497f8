package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Xunop/amana-bookstore/internal/config"
	"github.com/Xunop/amana-bookstore/internal/storage"
	"github.com/Xunop/amana-bookstore/internal/store"
	"github.com/Xunop/amana-bookstore/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts *config.Options) (http.Handler, *worker.RequestLogPool, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books.json"), []byte(`{"books":[{"id":"1","title":"T","author":"A"}]}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reviews.json"), []byte(`{"reviews":[]}`), 0644))
	driver, err := storage.NewFileDriver(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var sideLog bytes.Buffer
	pool := worker.NewRequestLogPool(&sideLog, 64)
	t.Cleanup(pool.Close)

	if opts == nil {
		opts = config.GetDefaultOptions()
	}
	return setupHandler(ctx, opts, store.NewStore(driver), pool), pool, &sideLog
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestBanner(t *testing.T) {
	h, _, _ := newTestHandler(t, nil)

	w := serve(h, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"📚 Welcome to the Amana Bookstore API","routes":["/books","/reviews"]}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthcheckAndVersion(t *testing.T) {
	h, _, _ := newTestHandler(t, nil)

	w := serve(h, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = serve(h, http.MethodGet, "/version")
	assert.Equal(t, config.Version, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	h, _, _ := newTestHandler(t, nil)

	w := serve(h, http.MethodGet, "/authors")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Route not found"}`, w.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	h, _, _ := newTestHandler(t, nil)

	w := serve(h, http.MethodDelete, "/books")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Method not allowed"}`, w.Body.String())
}

func TestCatalogRoutesAreMounted(t *testing.T) {
	h, _, _ := newTestHandler(t, nil)

	w := serve(h, http.MethodGet, "/books/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestRequestSideLog(t *testing.T) {
	h, pool, sideLog := newTestHandler(t, nil)

	serve(h, http.MethodGet, "/books?x=1")
	serve(h, http.MethodGet, "/nowhere")
	serve(h, http.MethodDelete, "/books")
	pool.Close()

	lines := strings.Split(strings.TrimSuffix(sideLog.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], " GET /books?x=1"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " GET /nowhere"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], " DELETE /books"), lines[2])
}

func TestRateLimit(t *testing.T) {
	opts := config.GetDefaultOptions()
	opts.RateLimitRPS = 0.001
	opts.RateLimitBurst = 2
	h, _, _ := newTestHandler(t, opts)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/books").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/books").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodGet, "/books").Code)
}

func TestBodyTooLarge(t *testing.T) {
	opts := config.GetDefaultOptions()
	opts.MaxBodySize = 16
	h, _, _ := newTestHandler(t, opts)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"a long title","author":"someone"}`))
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
