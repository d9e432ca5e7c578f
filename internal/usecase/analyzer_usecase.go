package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/user/seo-analyzer-service/internal/analysis"
	"github.com/user/seo-analyzer-service/internal/entity"
	"github.com/user/seo-analyzer-service/internal/repository"
	"github.com/user/seo-analyzer-service/pkg/metrics"
)

// Analyzer defines the interface for running and retrieving page analyses.
type Analyzer interface {
	// Analyze fetches the URL and runs the full analysis pipeline.
	// A cached report within its TTL is returned as-is unless
	// forceRefresh is set.
	Analyze(ctx context.Context, url string, forceRefresh bool) (*entity.Report, error)
	// GetReport returns the last persisted report for the URL.
	GetReport(ctx context.Context, url string) (*entity.Report, error)
	// KeywordsCSV renders the keyword table of the last report as CSV,
	// returning the bytes and a suggested download filename.
	KeywordsCSV(ctx context.Context, url string) ([]byte, string, error)
}

type analyzerUseCase struct {
	fetcherRepo repository.FetcherRepository
	reportRepo  repository.ReportRepository
	cacheRepo   repository.ReportCacheRepository
	cacheTTL    time.Duration
	topKeywords int
}

// NewAnalyzer creates a new instance of the analyzer use case.
func NewAnalyzer(
	fetcherRepo repository.FetcherRepository,
	reportRepo repository.ReportRepository,
	cacheRepo repository.ReportCacheRepository,
	cacheTTL time.Duration,
	topKeywords int,
) Analyzer {
	return &analyzerUseCase{
		fetcherRepo: fetcherRepo,
		reportRepo:  reportRepo,
		cacheRepo:   cacheRepo,
		cacheTTL:    cacheTTL,
		topKeywords: topKeywords,
	}
}

// Analyze runs the full pipeline for one URL: cache lookup, fetch, pure
// analysis, persistence. Only a fetch failure aborts; storage and cache
// errors degrade to warnings since the report is already in hand.
func (uc *analyzerUseCase) Analyze(ctx context.Context, pageURL string, forceRefresh bool) (*entity.Report, error) {
	if forceRefresh {
		if err := uc.cacheRepo.Invalidate(ctx, pageURL); err != nil {
			slog.Warn("Failed to invalidate cached report for force refresh", "url", pageURL, "error", err)
		}
	} else {
		cached, err := uc.cacheRepo.Get(ctx, pageURL)
		if err == nil {
			slog.Info("Serving analysis from cache", "url", pageURL)
			return cached, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			slog.Warn("Report cache lookup failed, analyzing from scratch", "url", pageURL, "error", err)
		}
	}

	domain := "unknown"
	if parsed, _ := url.Parse(pageURL); parsed != nil && parsed.Hostname() != "" {
		domain = parsed.Hostname()
	}

	startTime := time.Now()
	result, fetchErr := uc.fetcherRepo.Fetch(ctx, pageURL)
	if fetchErr != nil {
		metrics.AnalysesTotal.WithLabelValues("failure", fetchErrorType(fetchErr)).Inc()
		slog.Error("Failed to fetch page", "url", pageURL, "error", fetchErr)
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, fetchErr)
	}
	metrics.FetchDuration.WithLabelValues(domain).Observe(result.ElapsedSeconds)

	report, err := analysis.Run(result.Body, pageURL, result.StatusCode, result.ElapsedSeconds, uc.topKeywords)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("failure", "parse").Inc()
		return nil, fmt.Errorf("failed to analyze %s: %w", pageURL, err)
	}

	metrics.AnalysesTotal.WithLabelValues("success", "").Inc()
	metrics.AnalysisDuration.WithLabelValues(domain).Observe(time.Since(startTime).Seconds())
	metrics.SeoScore.Observe(report.Score)

	slog.Info("Analysis complete",
		"url", pageURL,
		"score", report.Score,
		"load_time_seconds", report.LoadTimeSeconds,
		"recommendations", len(report.Recommendations),
	)

	if err := uc.reportRepo.Save(ctx, report); err != nil {
		// Not critical, the caller still gets the report.
		slog.Warn("Failed to persist report", "url", pageURL, "error", err)
	}
	if err := uc.cacheRepo.Set(ctx, report, uc.cacheTTL); err != nil {
		slog.Warn("Failed to cache report", "url", pageURL, "error", err)
	}

	return report, nil
}

// GetReport returns the last persisted report for the URL.
func (uc *analyzerUseCase) GetReport(ctx context.Context, pageURL string) (*entity.Report, error) {
	return uc.reportRepo.FindByURL(ctx, pageURL)
}

// KeywordsCSV exports the keyword table of the last report as CSV.
func (uc *analyzerUseCase) KeywordsCSV(ctx context.Context, pageURL string) ([]byte, string, error) {
	report, err := uc.reportRepo.FindByURL(ctx, pageURL)
	if err != nil {
		return nil, "", err
	}

	data, err := analysis.KeywordsCSV(report.Keywords)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export keywords for %s: %w", pageURL, err)
	}
	return data, fmt.Sprintf("%s_keywords.csv", report.Domain), nil
}

func fetchErrorType(err error) string {
	switch {
	case errors.Is(err, repository.ErrFetchTimeout):
		return "timeout"
	case errors.Is(err, repository.ErrBadStatus):
		return "bad_status"
	case errors.Is(err, repository.ErrFetchFailed):
		return "transport"
	}
	return "unknown"
}
