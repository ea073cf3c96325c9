package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

// requestLogRepo implements RequestLogRepo.
type requestLogRepo struct {
	db *sqlx.DB
}

type requestRow struct {
	ID           int64  `db:"id"`
	RequestID    string `db:"request_id"`
	Method       string `db:"method"`
	Path         string `db:"path"`
	StatusCode   int    `db:"status_code"`
	LatencyMs    int64  `db:"latency_ms"`
	Success      bool   `db:"success"`
	ErrorMessage string `db:"error_message"`
	CreatedAt    int64  `db:"created_at"`
}

// RecordRequest appends ev to the log.
func (r *requestLogRepo) RecordRequest(ctx context.Context, ev api.RequestEvent) error {
	row := requestRow{
		RequestID:    ev.RequestID,
		Method:       ev.Method,
		Path:         ev.Path,
		StatusCode:   ev.StatusCode,
		LatencyMs:    ev.Latency.Milliseconds(),
		Success:      ev.Success,
		ErrorMessage: ev.ErrorMessage,
		CreatedAt:    ev.At.UnixMilli(),
	}
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO request_log (request_id, method, path, status_code, latency_ms, success, error_message, created_at)
		 VALUES (:request_id, :method, :path, :status_code, :latency_ms, :success, :error_message, :created_at)`,
		row)
	if err != nil {
		return fmt.Errorf("append request log: %w", err)
	}
	return nil
}

func (r *requestLogRepo) Recent(ctx context.Context, limit int) ([]RequestRecord, error) {
	query := `SELECT id, request_id, method, path, status_code, latency_ms, success, error_message, created_at
		FROM request_log ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []requestRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query request log: %w", err)
	}

	out := make([]RequestRecord, len(rows))
	for i, row := range rows {
		out[i] = RequestRecord{
			ID:           row.ID,
			RequestID:    row.RequestID,
			Method:       row.Method,
			Path:         row.Path,
			StatusCode:   row.StatusCode,
			Latency:      time.Duration(row.LatencyMs) * time.Millisecond,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			Timestamp:    time.UnixMilli(row.CreatedAt),
		}
	}
	return out, nil
}

func (r *requestLogRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM request_log`); err != nil {
		return fmt.Errorf("clear request log: %w", err)
	}
	return nil
}
