package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/user/seo-analyzer-service/internal/entity"
	"github.com/user/seo-analyzer-service/internal/repository"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// HTTPFetcher retrieves pages with a plain GET and a fixed timeout. No
// JavaScript rendering and no retries.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher implementation backed by net/http.
func NewHTTPFetcher(timeout time.Duration) repository.FetcherRepository {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch performs one GET against the URL. Elapsed time covers the full
// transfer including the body download.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (*entity.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrFetchTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrFetchTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrFetchFailed, err)
	}
	elapsed := time.Since(start).Seconds()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", repository.ErrBadStatus, resp.StatusCode)
	}

	return &entity.FetchResult{
		Body:           body,
		StatusCode:     resp.StatusCode,
		ElapsedSeconds: elapsed,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
