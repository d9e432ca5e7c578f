package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/seo-analyzer-service/internal/entity"
	"github.com/user/seo-analyzer-service/internal/repository"
)

// ReportRepoImpl provides a concrete implementation for the ReportRepository interface using PostgreSQL.
type ReportRepoImpl struct {
	db *pgxpool.Pool
}

// NewReportRepo creates a new instance of ReportRepoImpl.
func NewReportRepo(db *pgxpool.Pool) *ReportRepoImpl {
	return &ReportRepoImpl{db: db}
}

// Save stores or updates the analysis report for a URL. The structured
// analysis payload (meta, headings, keywords, links, images, checks,
// recommendations) is stored as a single JSONB column.
func (r *ReportRepoImpl) Save(ctx context.Context, report *entity.Report) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO reports (url, domain, http_status_code, load_time_seconds, word_count, score, report, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO UPDATE SET
			domain = EXCLUDED.domain,
			http_status_code = EXCLUDED.http_status_code,
			load_time_seconds = EXCLUDED.load_time_seconds,
			word_count = EXCLUDED.word_count,
			score = EXCLUDED.score,
			report = EXCLUDED.report,
			analyzed_at = EXCLUDED.analyzed_at;
	`

	_, err = r.db.Exec(ctx, query,
		report.URL,
		report.Domain,
		report.HTTPStatusCode,
		report.LoadTimeSeconds,
		report.WordCount,
		report.Score,
		reportJSON,
		report.AnalyzedAt,
	)
	return err
}

// FindByURL retrieves the last stored report for a specific URL.
func (r *ReportRepoImpl) FindByURL(ctx context.Context, url string) (*entity.Report, error) {
	query := `
		SELECT id, report
		FROM reports
		WHERE url = $1;
	`
	row := r.db.QueryRow(ctx, query, url)

	var id int64
	var reportJSON []byte
	if err := row.Scan(&id, &reportJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrReportNotFound
		}
		return nil, err
	}

	var report entity.Report
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, err
	}
	report.ID = id

	return &report, nil
}
