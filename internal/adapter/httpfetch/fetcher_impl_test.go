package httpfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/seo-analyzer-service/internal/repository"
)

func TestFetchSuccess(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html><title>ok</title></html>"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5 * time.Second)
	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, string(result.Body), "<title>ok</title>")
	assert.Greater(t, result.ElapsedSeconds, 0.0)
	assert.Equal(t, userAgent, gotUserAgent)
}

func TestFetchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5 * time.Second)
	_, err := fetcher.Fetch(context.Background(), server.URL)

	assert.ErrorIs(t, err, repository.ErrBadStatus)
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(50 * time.Millisecond)
	_, err := fetcher.Fetch(context.Background(), server.URL)

	assert.ErrorIs(t, err, repository.ErrFetchTimeout)
}

func TestFetchTransportError(t *testing.T) {
	fetcher := NewHTTPFetcher(1 * time.Second)
	_, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1")

	assert.ErrorIs(t, err, repository.ErrFetchFailed)
}
