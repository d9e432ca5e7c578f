package repository

import (
	"context"
	"errors"
	"time"

	"github.com/user/seo-analyzer-service/internal/entity"
)

// ErrCacheMiss indicates no cached report exists for the URL.
var ErrCacheMiss = errors.New("report not in cache")

// ReportCacheRepository defines the interface for time-boxed reuse of a
// previous analysis of the same URL.
type ReportCacheRepository interface {
	// Get returns the cached report for a URL, or ErrCacheMiss.
	Get(ctx context.Context, url string) (*entity.Report, error)
	// Set caches the report for a URL with the given expiry.
	Set(ctx context.Context, report *entity.Report, expiry time.Duration) error
	// Invalidate drops the cached report for a URL, used for force_refresh.
	Invalidate(ctx context.Context, url string) error
}
