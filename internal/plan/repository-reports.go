package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/fitcoach/internal/sqlite"
)

// sqliteReportRepository implements reportRepository.
type sqliteReportRepository struct {
	baseRepository
}

func newSQLiteReportRepository(db *sqlite.Database, logger *slog.Logger) *sqliteReportRepository {
	return &sqliteReportRepository{
		baseRepository: newBaseRepository(db, logger),
	}
}

// Get retrieves the stored report markdown for a week.
func (r *sqliteReportRepository) Get(ctx context.Context, week int) (string, error) {
	var markdown string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT content_markdown
		FROM weekly_reports
		WHERE week = ?`, week).Scan(&markdown)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query weekly report: %w", err)
	}
	return markdown, nil
}

// Set saves the report markdown for a week, replacing any earlier report.
func (r *sqliteReportRepository) Set(ctx context.Context, week int, markdown string) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO weekly_reports (week, content_markdown, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (week) DO UPDATE SET
			content_markdown = excluded.content_markdown,
			created_at = excluded.created_at`,
		week, markdown, time.Now().UTC().Format(timestampFormat))
	if err != nil {
		return fmt.Errorf("save weekly report: %w", err)
	}
	return nil
}
