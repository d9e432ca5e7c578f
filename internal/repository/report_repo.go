package repository

import (
	"context"
	"errors"

	"github.com/user/seo-analyzer-service/internal/entity"
)

// ErrReportNotFound indicates no stored report exists for the URL.
var ErrReportNotFound = errors.New("no report found for URL")

// ReportRepository defines the interface for storing and retrieving analysis reports.
type ReportRepository interface {
	// Save stores the report for a URL. If a report for the URL already exists, it is updated.
	Save(ctx context.Context, report *entity.Report) error
	// FindByURL retrieves the last stored report for a specific URL.
	FindByURL(ctx context.Context, url string) (*entity.Report, error)
}
