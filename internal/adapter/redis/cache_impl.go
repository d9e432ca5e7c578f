package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/user/seo-analyzer-service/internal/entity"
	"github.com/user/seo-analyzer-service/internal/repository"
	"github.com/user/seo-analyzer-service/pkg/utils"
)

const reportCachePrefix = "report:"

// ReportCacheImpl provides a concrete implementation for the
// ReportCacheRepository interface using Redis. A cached report is reused
// until its TTL expires, so repeated analyses of the same URL within the
// window skip the fetch entirely.
type ReportCacheImpl struct {
	client *redis.Client
}

// NewReportCache creates a new instance of ReportCacheImpl.
func NewReportCache(client *redis.Client) *ReportCacheImpl {
	return &ReportCacheImpl{client: client}
}

// generateKey creates a consistent Redis key for a given URL by hashing it.
func (r *ReportCacheImpl) generateKey(url string) string {
	return fmt.Sprintf("%s%s", reportCachePrefix, utils.HashURL(url))
}

// Get returns the cached report for a URL, or ErrCacheMiss when absent.
func (r *ReportCacheImpl) Get(ctx context.Context, url string) (*entity.Report, error) {
	data, err := r.client.Get(ctx, r.generateKey(url)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}

	var report entity.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Set caches the report for a URL with the given expiry.
func (r *ReportCacheImpl) Set(ctx context.Context, report *entity.Report, expiry time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	// SETEX is atomic and sets the key with an expiry.
	return r.client.SetEx(ctx, r.generateKey(report.URL), data, expiry).Err()
}

// Invalidate drops the cached report for a URL, used for force_refresh.
func (r *ReportCacheImpl) Invalidate(ctx context.Context, url string) error {
	return r.client.Del(ctx, r.generateKey(url)).Err()
}
