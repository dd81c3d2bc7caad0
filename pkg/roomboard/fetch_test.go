package roomboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	payload := []byte("xlsx bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write(payload)
	}))
	defer srv.Close()

	tmp, err := NewFetcher(5*time.Second).Download(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, int64(len(payload)), tmp.Size)
	assert.Equal(t, ".xlsx", filepath.Ext(tmp.Path))
	got, err := os.ReadFile(tmp.Path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, tmp.Remove())
	_, err = os.Stat(tmp.Path)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, tmp.Remove(), "removing twice is fine")
}

func TestDownloadStatusError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	tmp, err := NewFetcher(5*time.Second).Download(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Nil(t, tmp)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	assert.Equal(t, srv.URL, fetchErr.URL)
	assert.Contains(t, err.Error(), "unexpected status 404")

	leftovers, _ := filepath.Glob(filepath.Join(dir, "roomboard-*"))
	assert.Empty(t, leftovers)
}

func TestDownloadTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewFetcher(time.Second).Download(context.Background(), url)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 0, fetchErr.Status)
}

func TestTempFileRemoveNil(t *testing.T) {
	var tmp *TempFile
	assert.NoError(t, tmp.Remove())
}
