package repository

import (
	"context"
	"errors"

	"github.com/user/seo-analyzer-service/internal/entity"
)

var (
	// ErrFetchTimeout indicates the page did not respond within the fetch timeout.
	ErrFetchTimeout = errors.New("fetch timed out")
	// ErrFetchFailed indicates a transport-level failure (DNS, connection, TLS).
	ErrFetchFailed = errors.New("fetch failed")
	// ErrBadStatus indicates the server answered with a non-200 status code.
	ErrBadStatus = errors.New("non-200 status code")
)

// FetcherRepository defines the contract for retrieving a single web page.
type FetcherRepository interface {
	// Fetch performs one GET against the URL and returns the raw body,
	// status code and elapsed time. Any non-200 response or transport
	// error is reported as an error; no retries are attempted.
	Fetch(ctx context.Context, url string) (*entity.FetchResult, error)
}
